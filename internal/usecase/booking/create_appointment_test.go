package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/models"
)

func bookingFixture() (*fakeRepo, *fakeNotifier, *CreateAppointment) {
	repo := newFakeRepo()
	utcSalon(repo)
	repo.staff = []models.Staff{
		{ID: 1, SalonID: 1, Name: "Asha"},
		{ID: 2, SalonID: 1, Name: "Banu"},
	}
	repo.services = []models.Service{
		{ID: 1, SalonID: 1, OwnerID: 10, Name: "Haircut", Price: 500, DurationMin: 60},
		{ID: 2, SalonID: 1, OwnerID: 10, Name: "Head Massage", Price: 300, DurationMin: 30},
		{ID: 3, SalonID: 1, OwnerID: 99, Name: "Foreign", Price: 100, DurationMin: 15},
	}

	notifier := &fakeNotifier{}
	uc := NewCreateAppointment(repo, notifier, newTestAudit())
	return repo, notifier, uc
}

func TestCreateAppointmentAssignsFreeStaff(t *testing.T) {
	repo, notifier, uc := bookingFixture()

	// First-listed member is busy across the requested window, so the
	// booking lands on the second.
	repo.addAppointment(models.Appointment{
		SalonID: 1, StaffID: 1, Status: "confirmed",
		StartAt: utcAt(monday, "10:00"), EndAt: utcAt(monday, "12:00"),
	})

	ap, staff, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:       10,
		ServiceIDs:    []uint{1, 2},
		Date:          monday,
		Time:          "10:30",
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(2), staff.ID)
	assert.Equal(t, uint(2), ap.StaffID)
	assert.Equal(t, 90, ap.TotalDuration)
	assert.Equal(t, 800.0, ap.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, utcAt(monday, "10:30"), ap.StartAt)
	assert.Equal(t, utcAt(monday, "12:00"), ap.EndAt)

	require.Equal(t, 1, notifier.count())
	ev := notifier.last()
	assert.Equal(t, domain.EventSlotsUpdate, ev.event)
	assert.Equal(t, domain.SlotsUpdatePayload{SalonID: 1, Date: monday}, ev.payload)
}

func TestCreateAppointmentAllStaffBusy(t *testing.T) {
	repo, notifier, uc := bookingFixture()

	repo.addAppointment(models.Appointment{
		SalonID: 1, StaffID: 1, Status: "confirmed",
		StartAt: utcAt(monday, "10:00"), EndAt: utcAt(monday, "12:00"),
	})
	repo.addAppointment(models.Appointment{
		SalonID: 1, StaffID: 2, Status: "confirmed",
		StartAt: utcAt(monday, "11:00"), EndAt: utcAt(monday, "11:30"),
	})

	before := len(repo.appointments)

	_, _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:       10,
		ServiceIDs:    []uint{1},
		Date:          monday,
		Time:          "11:00",
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
	})
	assert.True(t, httperr.IsBusiness(err, "no_staff_available"))
	assert.Len(t, repo.appointments, before, "failed booking must not persist anything")
	assert.Zero(t, notifier.count())
}

func TestCreateAppointmentBackToBackIsNotAConflict(t *testing.T) {
	repo, _, uc := bookingFixture()

	// Only one staff member; their existing booking ends exactly when
	// the new one starts.
	repo.staff = repo.staff[:1]
	repo.addAppointment(models.Appointment{
		SalonID: 1, StaffID: 1, Status: "confirmed",
		StartAt: utcAt(monday, "10:00"), EndAt: utcAt(monday, "11:00"),
	})

	_, staff, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:       10,
		ServiceIDs:    []uint{1},
		Date:          monday,
		Time:          "11:00",
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), staff.ID)
}

func TestCreateAppointmentFirstFitPrefersRosterOrder(t *testing.T) {
	_, _, uc := bookingFixture()

	_, staff, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:       10,
		ServiceIDs:    []uint{2},
		Date:          monday,
		Time:          "14:00",
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), staff.ID)
}

func TestCreateAppointmentCancelledBookingsDoNotBlock(t *testing.T) {
	repo, _, uc := bookingFixture()

	repo.staff = repo.staff[:1]
	repo.addAppointment(models.Appointment{
		SalonID: 1, StaffID: 1, Status: "cancelled",
		StartAt: utcAt(monday, "10:00"), EndAt: utcAt(monday, "12:00"),
	})

	_, staff, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:       10,
		ServiceIDs:    []uint{1},
		Date:          monday,
		Time:          "10:00",
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), staff.ID)
}

func TestCreateAppointmentRejectsForeignService(t *testing.T) {
	_, _, uc := bookingFixture()

	_, _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID:       10,
		ServiceIDs:    []uint{1, 3},
		Date:          monday,
		Time:          "10:00",
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo, _, uc := bookingFixture()

	_, _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 10, Date: monday, Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "services_required"))

	_, _, err = uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 10, ServiceIDs: []uint{1}, Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, _, err = uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 10, ServiceIDs: []uint{1}, Date: monday, Time: "25:99",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, _, err = uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 77, ServiceIDs: []uint{1}, Date: monday, Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "salon_not_found"))

	repo.staff = nil
	_, _, err = uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 10, ServiceIDs: []uint{1}, Date: monday, Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "no_staff_found"))
}

func TestCreateAppointmentPublicPathResolvesOwnerFromSalon(t *testing.T) {
	_, _, uc := bookingFixture()

	ap, _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		SalonID:       1,
		ServiceIDs:    []uint{2},
		Date:          monday,
		Time:          "15:00",
		CustomerName:  "Meera",
		CustomerPhone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), ap.OwnerID)
}
