package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	booking "github.com/onligro/salon-scheduler/internal/usecase/booking"
)

type SlotHandler struct {
	availability *booking.GetAvailability
}

func NewSlotHandler(availability *booking.GetAvailability) *SlotHandler {
	return &SlotHandler{availability: availability}
}

type AvailableSlotsRequest struct {
	SalonID  uint   `json:"salon_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Duration int    `json:"duration" binding:"required"`
}

// Available lists the bookable slot start times for a salon on a date.
func (h *SlotHandler) Available(c *gin.Context) {
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
		switch code, _ := httperr.BusinessCode(err); code {
		case "salon_not_found":
			httperr.NotFound(c, code, "Salon not found.")
		case "invalid_date", "invalid_duration":
			httperr.BadRequest(c, code, "Invalid date or duration.")
		default:
			httperr.Internal(c, "availability_failed", "Could not compute slots.")
		}
		return
	}

	c.JSON(http.StatusOK, out)
}
