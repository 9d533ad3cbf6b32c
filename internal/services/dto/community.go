package dto

import (
	"time"

	"babygrow_backend/internal/models"
)

type CreateArticleRequest struct {
	Title       string   `json:"title" validate:"required,max=128"`
	Content     string   `json:"content" validate:"required"`
	CategoryIDs []string `json:"category_ids" validate:"omitempty,dive,uuid"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=15"`
}

type UpdateArticleRequest struct {
	Title       string   `json:"title" validate:"required,max=128"`
	Content     string   `json:"content" validate:"required"`
	CategoryIDs []string `json:"category_ids" validate:"omitempty,dive,uuid"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=15"`
}

type ModerateArticleRequest struct {
	State int `json:"state" validate:"oneof=-1 1"` // approve или reject
}

type ArticleResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	State        int       `json:"state"`
	AuthorName   string    `json:"author_name"`
	Categories   []string  `json:"categories"`
	Tags         []string  `json:"tags"`
	LikeCount    int64     `json:"like_count"`
	CollectCount int64     `json:"collect_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToggleResult - итог переключения реакции
type ToggleResult struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

type AddCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id"`
}

// CommentData - данные нового комментария в ответе эндпоинта
type CommentData struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	Content   string    `json:"content"`
	ParentID  *string   `json:"parent_id,omitempty"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponse(c *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		LikeCount: c.LikeCount,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		resp.Username = c.User.Username
		resp.AvatarURL = c.User.Avatar
	}
	return resp
}
