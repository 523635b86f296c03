package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/middleware"
	"github.com/onligro/salon-scheduler/internal/models"
	"github.com/onligro/salon-scheduler/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type CreateSalonRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	Area        string `json:"area"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
	Timezone    string `json:"timezone"`
}

type UpdateSalonRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Area        string `json:"area"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
	Timezone    string `json:"timezone"`
}

// One salon per owner.
func (h *SalonHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Salon{}).Where("owner_id = ?", ownerID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "salon_already_exists", "Salon already exists for this owner.")
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	salon := models.Salon{
		OwnerID:     ownerID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Area:        req.Area,
		Description: req.Description,
		Gender:      req.Gender,
		Timezone:    tz,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_create_salon", "Could not create salon.")
		return
	}

	h.db.Model(&models.Owner{}).Where("id = ?", ownerID).Update("salon_id", salon.ID)

	c.JSON(http.StatusCreated, gin.H{"salon": salon})
}

func (h *SalonHandler) MySalon(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"salon": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"salon": salon})
}

func (h *SalonHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	if req.Name != "" {
		salon.Name = req.Name
	}
	if req.Address != "" {
		salon.Address = req.Address
	}
	if req.City != "" {
		salon.City = req.City
	}
	if req.Area != "" {
		salon.Area = req.Area
	}
	if req.Description != "" {
		salon.Description = req.Description
	}
	if req.Gender != "" {
		salon.Gender = req.Gender
	}
	if req.Timezone != "" && timezone.IsValid(req.Timezone) {
		salon.Timezone = req.Timezone
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Could not update salon.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salon": salon})
}
