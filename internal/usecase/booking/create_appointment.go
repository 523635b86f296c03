package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/audit"
	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/models"
	"github.com/onligro/salon-scheduler/internal/timezone"
)

type CreateAppointmentInput struct {
	// Exactly one of SalonID / OwnerID resolves the salon: the public
	// booking page sends a salon id, the owner dashboard books against
	// the authenticated owner's own salon.
	SalonID uint
	OwnerID uint

	ServiceIDs []uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

type CreateAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
	auditD *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditD,
	}
}

// Execute books an appointment: totals the requested services, parses
// the requested instant in the salon's timezone and assigns the first
// staff member whose schedule has no conflicting confirmed appointment.
// Assignment and insert happen in one transactional unit, so two
// concurrent requests for the last free member cannot both win.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, *models.Staff, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, nil, httperr.ErrBusiness("services_required")
	}
	if in.Date == "" || in.Time == "" {
		return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	salon, err := uc.resolveSalon(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	// Service lookups are scoped to the salon's owner so a request can
	// never total up another tenant's services.
	serviceIDs := dedupe(in.ServiceIDs)
	services, err := uc.repo.GetServices(ctx, salon.OwnerID, serviceIDs)
	if err != nil || len(services) != len(serviceIDs) {
		return nil, nil, httperr.ErrBusiness("service_not_found")
	}

	totalDuration := 0
	totalPrice := 0.0
	for _, s := range services {
		totalDuration += s.DurationMin
		totalPrice += s.Price
	}

	loc := timezone.Location(salon.Timezone)
	startAt, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	endAt := startAt.Add(time.Duration(totalDuration) * time.Minute)

	roster, err := uc.repo.ListStaff(ctx, salon.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(roster) == 0 {
		return nil, nil, httperr.ErrBusiness("no_staff_found")
	}

	ap := &models.Appointment{
		Reference:     uuid.NewString(),
		SalonID:       salon.ID,
		OwnerID:       salon.OwnerID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Services:      services,
		TotalPrice:    totalPrice,
		TotalDuration: totalDuration,
		StartAt:       startAt,
		EndAt:         endAt,
		Status:        string(domain.InitialStatus()),
	}

	staff, err := uc.repo.AllocateAppointment(ctx, ap, roster)
	if err != nil {
		return nil, nil, err
	}

	uc.notifier.Emit(domain.EventSlotsUpdate, domain.SlotsUpdatePayload{
		SalonID: salon.ID,
		Date:    in.Date,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		OwnerID:  &ap.OwnerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, staff, nil
}

func (uc *CreateAppointment) resolveSalon(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Salon, error) {

	if in.SalonID != 0 {
		salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("salon_not_found")
			}
			return nil, err
		}
		return salon, nil
	}

	salon, err := uc.repo.GetSalonByOwner(ctx, in.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("salon_not_found")
		}
		return nil, err
	}
	return salon, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
