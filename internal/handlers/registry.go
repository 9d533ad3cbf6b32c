package handlers

import (
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	ArticleHandler  *ArticleHandler
	ReactionHandler *ReactionHandler
	CommentHandler  *CommentHandler
	BabyHandler     *BabyHandler
	GrowthHandler   *GrowthHandler
	MediaHandler    *MediaHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, sc.AuthService),
		UserHandler:     NewUserHandler(base, sc.UserService),
		ArticleHandler:  NewArticleHandler(base, sc.ArticleService),
		ReactionHandler: NewReactionHandler(base, sc.ReactionService),
		CommentHandler:  NewCommentHandler(base, sc.CommentService),
		BabyHandler:     NewBabyHandler(base, sc.BabyService),
		GrowthHandler:   NewGrowthHandler(base, sc.GrowthService),
		MediaHandler:    NewMediaHandler(base, sc.MediaService),
	}
}
