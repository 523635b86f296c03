package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/timeutil"
	"github.com/onligro/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists the bookable slot start times for a salon on a date.
// Slots sit on a fixed 30-minute grid between open and close; a slot
// survives only if the requested duration fits before closing and at
// least one staff member is free for the whole window.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.DayAvailability, error) {

	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("salon_not_found")
		}
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	weekday := int(date.Weekday())

	// A missing schedule row means the day was never opened; any other
	// store error is surfaced, not converted into a domain answer.
	wh, err := uc.repo.GetWorkingHours(ctx, in.SalonID, weekday)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.DayAvailability{Slots: []domain.Slot{}, Reason: domain.ReasonClosed}, nil
		}
		return nil, err
	}
	if wh.IsClosed {
		return &domain.DayAvailability{Slots: []domain.Slot{}, Reason: domain.ReasonClosed}, nil
	}

	if wh.OpenTime == "" || wh.CloseTime == "" {
		return &domain.DayAvailability{Slots: []domain.Slot{}, Reason: domain.ReasonNoHours}, nil
	}

	openMin, err := timeutil.ToMinutes(wh.OpenTime)
	if err != nil {
		return &domain.DayAvailability{Slots: []domain.Slot{}, Reason: domain.ReasonNoHours}, nil
	}
	closeMin, err := timeutil.ToMinutes(wh.CloseTime)
	if err != nil {
		return &domain.DayAvailability{Slots: []domain.Slot{}, Reason: domain.ReasonNoHours}, nil
	}

	// Past slots are never offered when the query is for today.
	nowMin := -1
	now := timezone.NowIn(salon.Timezone)
	if in.Date == now.Format("2006-01-02") {
		nowMin = now.Hour()*60 + now.Minute()
	}

	staffCount, err := uc.repo.CountStaff(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	dayStart := date
	dayEnd := date.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, in.SalonID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	windows := domain.ToBusyWindows(appointments, loc)

	slots := []domain.Slot{}
	for start := openMin; start+1 <= closeMin; start += domain.SlotStepMinutes {
		if nowMin >= 0 && start < nowMin {
			continue
		}

		end := start + in.DurationMin
		if end > closeMin {
			continue
		}

		busy := domain.BusyStaffCount(windows, start, end)
		if int64(busy) >= staffCount {
			continue
		}

		slots = append(slots, domain.Slot{
			Time:         timeutil.MinutesToTime(start),
			CapacityLeft: int(staffCount) - busy,
		})
	}

	return &domain.DayAvailability{Slots: slots}, nil
}
