package booking

import (
	"time"

	"github.com/onligro/salon-scheduler/internal/models"
)

// Cancel flips an appointment to cancelled. Re-cancelling keeps the
// original cancellation timestamp so repeated calls change nothing.
func Cancel(ap *models.Appointment, now time.Time) {
	if ap.Status == string(StatusCancelled) {
		return
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}
