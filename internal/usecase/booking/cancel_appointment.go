package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/audit"
	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/models"
	"github.com/onligro/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
	auditD *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditD,
	}
}

// Execute soft-deletes an appointment. Cancelling twice is a no-op
// success; the slot simply returns to the available pool.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if ap.OwnerID != ownerID {
		return nil, httperr.ErrBusiness("not_authorized")
	}

	salon, err := uc.repo.GetSalonByID(ctx, ap.SalonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("salon_not_found")
		}
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	domain.Cancel(ap, now)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	date := ap.StartAt.In(timezone.Location(salon.Timezone)).Format("2006-01-02")
	uc.notifier.Emit(domain.EventSlotsUpdate, domain.SlotsUpdatePayload{
		SalonID: salon.ID,
		Date:    date,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		OwnerID:  &ownerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
