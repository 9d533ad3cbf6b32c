package routes

import (
	"babygrow_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ArticleHandler.RegisterRoutes(api)
		appHandlers.ReactionHandler.RegisterRoutes(api)
		appHandlers.CommentHandler.RegisterRoutes(api)
		appHandlers.BabyHandler.RegisterRoutes(api)
		appHandlers.GrowthHandler.RegisterRoutes(api)
		appHandlers.MediaHandler.RegisterRoutes(api)
	}
}
