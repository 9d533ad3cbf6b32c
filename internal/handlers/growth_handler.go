package handlers

import (
	"net/http"

	"babygrow_backend/internal/middleware"
	"babygrow_backend/internal/models"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GrowthHandler struct {
	*BaseHandler
	growthService services.GrowthService
}

func NewGrowthHandler(base *BaseHandler, growthService services.GrowthService) *GrowthHandler {
	return &GrowthHandler{
		BaseHandler:   base,
		growthService: growthService,
	}
}

func (h *GrowthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Справочники доступны без привязки к ребенку
	ref := rg.Group("")
	ref.Use(middleware.AuthMiddleware())
	{
		ref.GET("/vaccines", h.ListVaccines)
		ref.GET("/milestone-types", h.ListMilestoneTypes)
	}

	babies := rg.Group("/babies/:babyID")
	babies.Use(middleware.AuthMiddleware())
	{
		babies.POST("/records", h.CreateRecord)
		babies.GET("/records", h.ListRecords)
		babies.DELETE("/records/:recordID", h.DeleteRecord)

		babies.POST("/measurements", h.RecordMeasurement)
		babies.GET("/measurements", h.ListMeasurements)

		babies.POST("/vaccine-records", h.RecordVaccine)
		babies.GET("/vaccine-records", h.ListVaccineRecords)

		babies.POST("/events", h.CreateEvent)
		babies.GET("/events", h.ListEvents)

		babies.POST("/medications", h.RecordMedication)
		babies.GET("/medications", h.ListMedications)

		babies.POST("/checkups", h.RecordCheckup)
		babies.GET("/checkups", h.ListCheckups)
	}
}

func (h *GrowthHandler) CreateRecord(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	record, err := h.growthService.CreateRecord(db, userID, c.Param("babyID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *GrowthHandler) ListRecords(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	page, pageSize := ParsePagination(c)
	category := models.RecordCategory(c.Query("category"))

	db := h.GetDB(c)

	records, total, err := h.growthService.ListRecords(db, userID, c.Param("babyID"), category, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"records": records,
	})
}

func (h *GrowthHandler) DeleteRecord(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.growthService.DeleteRecord(db, userID, c.Param("babyID"), c.Param("recordID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}

func (h *GrowthHandler) RecordMeasurement(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMeasurementRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	m, err := h.growthService.RecordMeasurement(db, userID, c.Param("babyID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *GrowthHandler) ListMeasurements(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	measurements, err := h.growthService.ListMeasurements(db, userID, c.Param("babyID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"measurements": measurements})
}

func (h *GrowthHandler) RecordVaccine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVaccineRecordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	rec, err := h.growthService.RecordVaccine(db, userID, c.Param("babyID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *GrowthHandler) ListVaccineRecords(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	records, err := h.growthService.ListVaccineRecords(db, userID, c.Param("babyID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vaccine_records": records})
}

func (h *GrowthHandler) ListVaccines(c *gin.Context) {
	db := h.GetDB(c)

	vaccines, err := h.growthService.ListVaccines(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vaccines": vaccines})
}

func (h *GrowthHandler) CreateEvent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	event, err := h.growthService.CreateEvent(db, userID, c.Param("babyID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *GrowthHandler) ListEvents(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	events, err := h.growthService.ListEvents(db, userID, c.Param("babyID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *GrowthHandler) ListMilestoneTypes(c *gin.Context) {
	db := h.GetDB(c)

	types, err := h.growthService.ListMilestoneTypes(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestone_types": types})
}

func (h *GrowthHandler) RecordMedication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMedicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	rec, err := h.growthService.RecordMedication(db, userID, c.Param("babyID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *GrowthHandler) ListMedications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	records, err := h.growthService.ListMedicationRecords(db, userID, c.Param("babyID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"medication_records": records})
}

func (h *GrowthHandler) RecordCheckup(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCheckupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	rec, err := h.growthService.RecordCheckup(db, userID, c.Param("babyID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *GrowthHandler) ListCheckups(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	records, err := h.growthService.ListCheckupRecords(db, userID, c.Param("babyID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkup_records": records})
}
