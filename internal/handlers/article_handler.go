package handlers

import (
	"net/http"

	"babygrow_backend/internal/middleware"
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	*BaseHandler
	articleService services.ArticleService
}

func NewArticleHandler(base *BaseHandler, articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler:    base,
		articleService: articleService,
	}
}

func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	{
		articles.GET("", h.ListApproved)
		articles.GET("/:articleID", h.Get)
		articles.GET("/categories", h.ListCategories)
	}

	authed := rg.Group("/articles")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.PUT("/:articleID", h.Update)
		authed.DELETE("/:articleID", h.Delete)
		authed.GET("/mine", h.ListMine)
	}

	admin := rg.Group("/admin/articles")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/pending", h.ListPending)
		admin.POST("/:articleID/moderate", h.Moderate)
	}
}

func (h *ArticleHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	article, err := h.articleService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	article, err := h.articleService.Update(db, userID, c.Param("articleID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	article, err := h.articleService.Get(db, c.Param("articleID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) ListApproved(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	articles, total, err := h.articleService.ListApproved(db, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"articles": articles,
	})
}

func (h *ArticleHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	articles, total, err := h.articleService.ListByAuthor(db, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"articles": articles,
	})
}

func (h *ArticleHandler) ListPending(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	articles, total, err := h.articleService.ListPending(db, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"articles": articles,
	})
}

// Moderate переводит статью в approved (1) или rejected (-1)
func (h *ArticleHandler) Moderate(c *gin.Context) {
	var req dto.ModerateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.articleService.Moderate(db, c.Param("articleID"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article state updated"})
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.articleService.Delete(db, userID, c.Param("articleID"), middleware.IsAdmin(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

func (h *ArticleHandler) ListCategories(c *gin.Context) {
	db := h.GetDB(c)

	categories, err := h.articleService.ListCategories(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
