package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/httpresp"
	"github.com/onligro/salon-scheduler/internal/middleware"
	"github.com/onligro/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type AddServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
}

func (h *ServiceHandler) Add(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.BadRequest(c, "salon_not_found", "Salon not found.")
		return
	}

	service := models.Service{
		SalonID:     salon.ID,
		OwnerID:     ownerID,
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_add_service", "Could not add service.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

func (h *ServiceHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.BadRequest(c, "salon_not_found", "Salon not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found or unauthorized.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
