package handlers

import (
	"net/http"

	"babygrow_backend/internal/logger"
	"babygrow_backend/internal/middleware"
	"babygrow_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	babies := rg.Group("/babies")
	babies.Use(middleware.AuthMiddleware())
	{
		babies.POST("/:babyID/media", h.Attach)
		babies.GET("/:babyID/media", h.List)
		babies.DELETE("/:babyID/media/:photoID", h.Delete)
	}
}

// Attach принимает multipart-загрузку нескольких файлов.
// Конверт ответа: {"status":"success","msg":...,"accepted_count":N}
func (h *MediaHandler) Attach(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	babyID := c.Param("babyID")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"msg":    "Invalid multipart form",
		})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"msg":    "No files provided",
		})
		return
	}

	db := h.GetDB(c)

	result, err := h.mediaService.Attach(c.Request.Context(), db, userID, babyID, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Media attached",
		"baby_id", babyID, "accepted", result.AcceptedCount, "total", len(files))

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"msg":            "Upload processed",
		"accepted_count": result.AcceptedCount,
	})
}

func (h *MediaHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	babyID := c.Param("babyID")
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	photos, total, err := h.mediaService.List(c.Request.Context(), db, userID, babyID, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"photos": photos,
	})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	babyID := c.Param("babyID")
	photoID := c.Param("photoID")

	db := h.GetDB(c)

	if err := h.mediaService.Delete(c.Request.Context(), db, userID, babyID, photoID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
}
