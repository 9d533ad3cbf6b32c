package handlers

import (
	"net/http"

	"babygrow_backend/internal/middleware"
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	*BaseHandler
	reactionService services.ReactionService
}

func NewReactionHandler(base *BaseHandler, reactionService services.ReactionService) *ReactionHandler {
	return &ReactionHandler{
		BaseHandler:     base,
		reactionService: reactionService,
	}
}

func (h *ReactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	articles.Use(middleware.AuthMiddleware())
	{
		articles.POST("/:articleID/like", h.ToggleLike)
		articles.POST("/:articleID/collect", h.ToggleCollect)
		articles.GET("/:articleID/reactions", h.ReactionStatus)
	}

	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/collections", h.MyCollections)
	}
}

func (h *ReactionHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, models.ReactionLike, "liked", "like removed")
}

func (h *ReactionHandler) ToggleCollect(c *gin.Context) {
	h.toggle(c, models.ReactionCollect, "collected", "collect removed")
}

// toggle выполняет переключение и отвечает конвертом
// {"code":200,"status":0|1,"msg":...,"count":N}
func (h *ReactionHandler) toggle(c *gin.Context, kind models.ReactionKind, onMsg, offMsg string) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	articleID := c.Param("articleID")

	db := h.GetDB(c)

	result, err := h.reactionService.Toggle(db, kind, userID, articleID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := 0
	msg := offMsg
	if result.Active {
		status = 1
		msg = onMsg
	}

	c.JSON(http.StatusOK, gin.H{
		"code":   200,
		"status": status,
		"msg":    msg,
		"count":  result.Count,
	})
}

// ReactionStatus возвращает состояние обеих реакций текущего пользователя
func (h *ReactionHandler) ReactionStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	articleID := c.Param("articleID")

	db := h.GetDB(c)

	liked, err := h.reactionService.Status(db, models.ReactionLike, userID, articleID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	collected, err := h.reactionService.Status(db, models.ReactionCollect, userID, articleID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	likeCount, err := h.reactionService.Count(db, models.ReactionLike, articleID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	collectCount, err := h.reactionService.Count(db, models.ReactionCollect, articleID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":         liked,
		"collected":     collected,
		"like_count":    likeCount,
		"collect_count": collectCount,
	})
}

func (h *ReactionHandler) MyCollections(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	ids, err := h.reactionService.CollectedArticleIDs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article_ids": ids})
}
