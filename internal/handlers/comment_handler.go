package handlers

import (
	"net/http"

	"babygrow_backend/internal/middleware"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Код конверта удаления комментария для клиента
const commentDeleteFailedCode = -1005

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
	}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	{
		articles.GET("/:articleID/comments", h.List)
	}

	authed := rg.Group("/articles")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/:articleID/comments", h.Add)
		authed.DELETE("/:articleID/comments/:commentID", h.Delete)
	}
}

// Add создает комментарий. Конверт ответа:
// успех  {"status":"success","msg":...,"comment_count":N,"data":{...}}
// ошибка {"status":"error","msg":...}
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	articleID := c.Param("articleID")

	var req dto.AddCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"msg":    "Invalid request body",
		})
		return
	}

	db := h.GetDB(c)

	result, err := h.commentService.Add(db, userID, articleID, &req)
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			c.JSON(appErr.HTTPCode, gin.H{
				"status": "error",
				"msg":    appErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"msg":    "Failed to add comment",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"msg":           "Comment added",
		"comment_count": result.CommentCount,
		"data":          result.Comment,
	})
}

// Delete удаляет комментарий. Конверт ответа:
// успех  {"code":0,"msg":"deleted"}
// отказ  {"code":-1005,"msg":...}
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	articleID := c.Param("articleID")
	commentID := c.Param("commentID")

	mode := services.DeleteModeSoft
	if c.Query("mode") == string(services.DeleteModeHard) {
		mode = services.DeleteModeHard
	}

	db := h.GetDB(c)

	if err := h.commentService.Delete(db, userID, articleID, commentID, mode); err != nil {
		msg := "Failed to delete comment"
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			msg = appErr.Message
		}
		c.JSON(http.StatusOK, gin.H{
			"code": commentDeleteFailedCode,
			"msg":  msg,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 0,
		"msg":  "deleted",
	})
}

func (h *CommentHandler) List(c *gin.Context) {
	articleID := c.Param("articleID")

	db := h.GetDB(c)

	comments, count, err := h.commentService.List(db, articleID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comment_count": count,
		"comments":      comments,
	})
}
