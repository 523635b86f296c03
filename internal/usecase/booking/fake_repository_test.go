package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/audit"
	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/models"
	"github.com/rs/zerolog"
)

// fakeRepo is an in-memory Repository for use-case tests. The allocator
// path serializes under the mutex the way the gorm implementation
// serializes under its per-staff advisory lock, so conflict semantics
// match.
type fakeRepo struct {
	mu sync.Mutex

	salons       map[uint]*models.Salon
	hours        map[uint]map[int]*models.WorkingHours
	staff        []models.Staff
	services     []models.Service
	appointments []models.Appointment

	// When set, the matching lookups fail with this error, simulating
	// a store outage rather than a missing row.
	salonErr error
	hoursErr error

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons: make(map[uint]*models.Salon),
		hours:  make(map[uint]map[int]*models.WorkingHours),
		nextID: 1,
	}
}

func (f *fakeRepo) addSalon(s models.Salon) *models.Salon {
	f.salons[s.ID] = &s
	return &s
}

func (f *fakeRepo) addHours(wh models.WorkingHours) {
	if f.hours[wh.SalonID] == nil {
		f.hours[wh.SalonID] = make(map[int]*models.WorkingHours)
	}
	f.hours[wh.SalonID][wh.Weekday] = &wh
}

func (f *fakeRepo) addAppointment(ap models.Appointment) {
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if f.salonErr != nil {
		return nil, f.salonErr
	}
	if s, ok := f.salons[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetSalonByOwner(_ context.Context, ownerID uint) (*models.Salon, error) {
	for _, s := range f.salons {
		if s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, salonID uint, weekday int) (*models.WorkingHours, error) {
	if f.hoursErr != nil {
		return nil, f.hoursErr
	}
	if wh, ok := f.hours[salonID][weekday]; ok {
		return wh, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListStaff(_ context.Context, salonID uint) ([]models.Staff, error) {
	var out []models.Staff
	for _, st := range f.staff {
		if st.SalonID == salonID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountStaff(_ context.Context, salonID uint) (int64, error) {
	var count int64
	for _, st := range f.staff {
		if st.SalonID == salonID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetServices(_ context.Context, ownerID uint, serviceIDs []uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.OwnerID != ownerID {
			continue
		}
		for _, id := range serviceIDs {
			if s.ID == id {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, salonID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID != salonID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.StartAt.Before(dayEnd) && ap.EndAt.After(dayStart) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsBetween(_ context.Context, salonID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID != salonID {
			continue
		}
		if !ap.StartAt.Before(start) && ap.StartAt.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			cp := f.appointments[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetAppointmentByReference(_ context.Context, reference string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].Reference == reference {
			cp := f.appointments[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) AllocateAppointment(_ context.Context, ap *models.Appointment, roster []models.Staff) (*models.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range roster {
		staff := &roster[i]

		busy := false
		for _, existing := range f.appointments {
			if existing.StaffID != staff.ID || existing.Status == string(domain.StatusCancelled) {
				continue
			}
			if existing.StartAt.Before(ap.EndAt) && existing.EndAt.After(ap.StartAt) {
				busy = true
				break
			}
		}

		if !busy {
			ap.ID = f.nextID
			f.nextID++
			ap.StaffID = staff.ID
			f.appointments = append(f.appointments, *ap)
			return staff, nil
		}
	}

	return nil, httperr.ErrBusiness("no_staff_available")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotifier records emitted events.
type fakeNotifier struct {
	mu     sync.Mutex
	events []emitted
}

type emitted struct {
	event   string
	payload any
}

func (n *fakeNotifier) Emit(event string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, emitted{event: event, payload: payload})
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

func (n *fakeNotifier) last() emitted {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.events[len(n.events)-1]
}

type nopAuditWriter struct{}

func (nopAuditWriter) Write(audit.Event) error { return nil }

func newTestAudit() *audit.Dispatcher {
	return audit.NewDispatcher(nopAuditWriter{}, zerolog.Nop())
}
