package models

// ReactionKind различает "нравится" и "в закладки"
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionCollect ReactionKind = "collect"
)

// Like - связка пользователь-статья, не более одной на пару.
// Создается первым переключением, удаляется вторым (hard delete).
type Like struct {
	BaseModel
	UserID    string `gorm:"not null;uniqueIndex:uk_like_user_article" json:"user_id"`
	ArticleID string `gorm:"not null;uniqueIndex:uk_like_user_article" json:"article_id"`
}

// Collect - закладка, те же инварианты что у Like
type Collect struct {
	BaseModel
	UserID    string `gorm:"not null;uniqueIndex:uk_collect_user_article" json:"user_id"`
	ArticleID string `gorm:"not null;uniqueIndex:uk_collect_user_article" json:"article_id"`
}
