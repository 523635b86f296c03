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

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type AddStaffRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}

func (h *StaffHandler) Add(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var req AddStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.BadRequest(c, "salon_not_found", "Salon not found for this owner.")
		return
	}

	role := req.Role
	if role == "" {
		role = "Staff"
	}

	staff := models.Staff{
		SalonID: salon.ID,
		OwnerID: ownerID,
		Name:    req.Name,
		Role:    role,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_add_staff", "Could not add staff.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"staff": staff})
}

func (h *StaffHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.BadRequest(c, "salon_not_found", "Salon not found.")
		return
	}

	var staff []models.Staff
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&staff).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff not found or unauthorized.")
		return
	}

	if err := h.db.Delete(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Could not delete staff.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
