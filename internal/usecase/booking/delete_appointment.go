package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/audit"
	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: auditD,
	}
}

// Execute hard-deletes an appointment. Destructive and terminal: the
// record cannot be cancelled or restored afterwards.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	if ap.OwnerID != ownerID {
		return httperr.ErrBusiness("not_authorized")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		OwnerID:  &ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
