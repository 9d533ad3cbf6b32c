package models

// ArticleState - состояние модерации статьи
type ArticleState int

const (
	ArticleRejected ArticleState = -1
	ArticlePending  ArticleState = 0
	ArticleApproved ArticleState = 1
)

// Article - публикация в сообществе (опыт воспитания, заметки о развитии)
type Article struct {
	BaseModel
	Title    string       `gorm:"size:128;not null" json:"title"`
	Content  string       `gorm:"not null" json:"content"`
	AuthorID string       `gorm:"not null;index" json:"author_id"`
	State    ArticleState `gorm:"default:0;index" json:"state"`

	Author     *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Categories []Category `gorm:"many2many:article_categories" json:"categories,omitempty"`
	Tags       []Tag      `gorm:"many2many:article_tags" json:"tags,omitempty"`
}

// Category - категория статей, дерево на одну ссылку вверх
type Category struct {
	BaseModel
	Name     string  `gorm:"size:50;uniqueIndex;not null" json:"name"`
	ParentID *string `json:"parent_id"`

	Parent *Category `gorm:"foreignKey:ParentID" json:"-"`
}

type Tag struct {
	BaseModel
	Name string `gorm:"size:15;uniqueIndex;not null" json:"name"`
}
