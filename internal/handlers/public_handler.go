package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/models"
	booking "github.com/onligro/salon-scheduler/internal/usecase/booking"
)

const defaultSalonPageSize = 30

type PublicHandler struct {
	db           *gorm.DB
	availability *booking.GetAvailability
	createUC     *booking.CreateAppointment
}

func NewPublicHandler(db *gorm.DB, availability *booking.GetAvailability, createUC *booking.CreateAppointment) *PublicHandler {
	return &PublicHandler{db: db, availability: availability, createUC: createUC}
}

// SalonListItem is the trimmed projection exposed on the public listing.
type SalonListItem struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	City          string  `json:"city"`
	Area          string  `json:"area"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	StartingPrice float64 `json:"starting_price"`
}

// ListSalons serves the public salon directory with filters, sorting
// and pagination.
func (h *PublicHandler) ListSalons(c *gin.Context) {
	q := h.db.Model(&models.Salon{})

	if city := c.Query("city"); city != "" {
		q = q.Where("city ILIKE ?", "%"+city+"%")
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			q = q.Where("starting_price >= ?", v)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			q = q.Where("starting_price <= ?", v)
		}
	}
	if rating := c.Query("rating"); rating != "" {
		if v, err := strconv.ParseFloat(rating, 64); err == nil {
			q = q.Where("rating >= ?", v)
		}
	}
	if gender := c.Query("gender"); gender != "" {
		q = q.Where("gender = ?", gender)
	}

	switch c.Query("sort") {
	case "rating-desc":
		q = q.Order("rating DESC")
	case "price-asc":
		q = q.Order("starting_price ASC")
	case "price-desc":
		q = q.Order("starting_price DESC")
	default:
		q = q.Order("created_at DESC")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSalonPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultSalonPageSize
	}

	var salons []SalonListItem
	if err := q.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Could not list salons.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":   page,
		"salons": salons,
	})
}

func (h *PublicHandler) GetSalon(c *gin.Context) {
	var salon models.Salon
	if err := h.db.First(&salon, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salon": salon})
}

func (h *PublicHandler) ServicesBySalon(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("salon_id = ?", c.Param("salonId")).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *PublicHandler) WorkingHoursBySalon(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.
		Where("salon_id = ?", c.Param("salonId")).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Could not get working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

func (h *PublicHandler) Slots(c *gin.Context) {
	var req AvailableSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "salon_id, date and duration required.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:     req.SalonID,
		Date:        req.Date,
		DurationMin: req.Duration,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

type PublicCreateAppointmentRequest struct {
	SalonID       uint   `json:"salon_id" binding:"required"`
	ServiceIDs    []uint `json:"service_ids" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
}

// CreateAppointment books an appointment without authentication. The
// owning account is resolved from the salon itself.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, staff, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		SalonID:       req.SalonID,
		ServiceIDs:    req.ServiceIDs,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": ap,
		"staff": gin.H{
			"id":   staff.ID,
			"name": staff.Name,
		},
	})
}

// GetAppointment looks an appointment up by its public reference so
// customers can check a booking without an account.
func (h *PublicHandler) GetAppointment(c *gin.Context) {
	ref := c.Param("reference")
	if ref == "" {
		httperr.BadRequest(c, "missing_reference", "Appointment reference is required.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Staff").
		Preload("Services").
		Where("reference = ?", ref).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}
