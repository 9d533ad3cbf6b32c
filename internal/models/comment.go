package models

// CommentMaxLength - предел длины содержимого комментария
const CommentMaxLength = 500

// Comment - комментарий к статье.
// ParentID дает один уровень вложенности; софт-удаленные строки
// остаются в таблице, но не попадают в счетчик и выдачу.
type Comment struct {
	BaseModel
	ArticleID string  `gorm:"not null;index:idx_comment_article_created" json:"article_id"`
	UserID    string  `gorm:"not null;index" json:"user_id"`
	Content   string  `gorm:"size:500;not null" json:"content"`
	ParentID  *string `json:"parent_id"`
	LikeCount int     `gorm:"default:0" json:"like_count"`
	IsDeleted bool    `gorm:"default:false;index" json:"-"`

	User   *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Parent *Comment `gorm:"foreignKey:ParentID" json:"-"`
}
