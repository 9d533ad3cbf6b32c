package services

import (
	"babygrow_backend/internal/config"
	"babygrow_backend/internal/email"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/storage"
	"babygrow_backend/internal/token"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	ArticleService  ArticleService
	ReactionService ReactionService
	CommentService  CommentService
	BabyService     BabyService
	GrowthService   GrowthService
	MediaService    MediaService
	EmailService    email.Provider
}

// NewServiceContainer собирает сервисы со всеми зависимостями
func NewServiceContainer(
	cfg *config.Config,
	codec *token.Codec,
	signer *token.Signer,
	emailProvider email.Provider,
	store storage.Storage,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	articleRepo := repositories.NewArticleRepository()
	reactionRepo := repositories.NewReactionRepository()
	commentRepo := repositories.NewCommentRepository()
	babyRepo := repositories.NewBabyRepository()
	growthRepo := repositories.NewGrowthRepository()
	photoRepo := repositories.NewPhotoRepository()

	mediaConfig := &MediaConfig{
		MaxFileSize:       cfg.Upload.MaxSize,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		ImageQuality:      cfg.Upload.ImageQuality,
	}

	return &ServiceContainer{
		AuthService:     NewAuthService(userRepo, codec, signer, emailProvider, cfg.Token.BaseURL),
		UserService:     NewUserService(userRepo),
		ArticleService:  NewArticleService(articleRepo, reactionRepo, commentRepo),
		ReactionService: NewReactionService(reactionRepo, articleRepo, userRepo),
		CommentService:  NewCommentService(commentRepo, articleRepo, userRepo),
		BabyService:     NewBabyService(babyRepo, userRepo),
		GrowthService:   NewGrowthService(growthRepo, babyRepo),
		MediaService:    NewMediaService(photoRepo, babyRepo, store, mediaConfig),
		EmailService:    emailProvider,
	}
}
