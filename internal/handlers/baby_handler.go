package handlers

import (
	"net/http"

	"babygrow_backend/internal/middleware"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BabyHandler struct {
	*BaseHandler
	babyService services.BabyService
}

func NewBabyHandler(base *BaseHandler, babyService services.BabyService) *BabyHandler {
	return &BabyHandler{
		BaseHandler: base,
		babyService: babyService,
	}
}

func (h *BabyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	babies := rg.Group("/babies")
	babies.Use(middleware.AuthMiddleware())
	{
		babies.POST("", h.Create)
		babies.GET("", h.List)
		babies.GET("/:babyID", h.Get)
		babies.PUT("/:babyID", h.Update)
		babies.DELETE("/:babyID", h.Delete)
		babies.POST("/:babyID/parents", h.LinkParent)
		babies.DELETE("/:babyID/parents/:userID", h.UnlinkParent)
	}
}

func (h *BabyHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBabyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	baby, err := h.babyService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, baby)
}

func (h *BabyHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	babies, total, err := h.babyService.List(db, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"babies": babies,
	})
}

func (h *BabyHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	baby, err := h.babyService.Get(db, userID, c.Param("babyID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, baby)
}

func (h *BabyHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBabyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	baby, err := h.babyService.Update(db, userID, c.Param("babyID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, baby)
}

func (h *BabyHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.babyService.Delete(db, userID, c.Param("babyID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Baby profile deleted"})
}

func (h *BabyHandler) LinkParent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.LinkParentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.babyService.LinkParent(db, userID, c.Param("babyID"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Parent linked"})
}

func (h *BabyHandler) UnlinkParent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.babyService.UnlinkParent(db, userID, c.Param("babyID"), c.Param("userID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Parent unlinked"})
}
