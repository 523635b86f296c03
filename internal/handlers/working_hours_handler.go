package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/middleware"
	"github.com/onligro/salon-scheduler/internal/models"
	"github.com/onligro/salon-scheduler/internal/timeutil"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

// Weekday is the canonical 0..6 integer, Sunday = 0.
type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

type WorkingHoursSetRequest struct {
	Hours []WorkingDayConfig `json:"hours" binding:"required"`
}

// Set upserts the full 7-day schedule for the owner's salon.
func (h *WorkingHoursHandler) Set(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var req WorkingHoursSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if len(req.Hours) != 7 {
		httperr.BadRequest(c, "invalid_request", "7 days data required.")
		return
	}

	for _, d := range req.Hours {
		if d.IsClosed || d.OpenTime == "" || d.CloseTime == "" {
			continue
		}

		open, err := timeutil.ToMinutes(d.OpenTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Invalid open time.")
			return
		}
		closeM, err := timeutil.ToMinutes(d.CloseTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Invalid close time.")
			return
		}
		if open >= closeM {
			httperr.BadRequest(c, "invalid_time_range", "Open time must be before close time.")
			return
		}
	}

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.BadRequest(c, "salon_not_found", "Salon not found.")
		return
	}

	results := make([]models.WorkingHours, 0, len(req.Hours))
	for _, d := range req.Hours {
		wh := models.WorkingHours{
			SalonID:   salon.ID,
			Weekday:   d.Weekday,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			IsClosed:  d.IsClosed,
		}

		if err := h.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "salon_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"open_time", "close_time", "is_closed"}),
		}).Create(&wh).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Could not save working hours.")
			return
		}

		results = append(results, wh)
	}

	c.JSON(http.StatusOK, gin.H{"working_hours": results})
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.BadRequest(c, "salon_not_found", "Salon not found.")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Could not get working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hours": hours})
}
