package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/middleware"
	"github.com/onligro/salon-scheduler/internal/models"
	booking "github.com/onligro/salon-scheduler/internal/usecase/booking"
)

type AppointmentHandler struct {
	db *gorm.DB

	createUC *booking.CreateAppointment
	cancelUC *booking.CancelAppointment
	deleteUC *booking.DeleteAppointment
	listUC   *booking.ListAppointmentsByDate
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *booking.CreateAppointment,
	cancelUC *booking.CancelAppointment,
	deleteUC *booking.DeleteAppointment,
	listUC *booking.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		createUC: createUC,
		cancelUC: cancelUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

type CreateAppointmentRequest struct {
	ServiceIDs    []uint `json:"service_ids" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, staff, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		OwnerID:       ownerID,
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

func (h *AppointmentHandler) All(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.BadRequest(c, "salon_not_found", "Salon not found.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Staff").
		Preload("Services").
		Where("salon_id = ?", salon.ID).
		Order("created_at DESC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":        len(appointments),
		"appointments": appointments,
	})
}

func (h *AppointmentHandler) ByDate(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), ownerID, date)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"appointments": appointments,
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ownerID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, uint(id)); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// mapBookingError translates business codes from the booking use cases
// onto HTTP statuses.
func mapBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case "services_required", "invalid_date", "invalid_date_or_time", "invalid_duration":
		httperr.BadRequest(c, code, "Invalid request.")
	case "salon_not_found", "appointment_not_found", "service_not_found":
		httperr.NotFound(c, code, "Not found.")
	case "not_authorized":
		httperr.Forbidden(c, code, "Not authorized.")
	case "no_staff_found":
		httperr.BadRequest(c, code, "No staff found in this salon.")
	case "no_staff_available":
		httperr.Conflict(c, code, "No staff available at this time.")
	default:
		httperr.Internal(c, code, "Something went wrong.")
	}
}
