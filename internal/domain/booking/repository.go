package booking

import (
	"context"
	"time"

	"github.com/onligro/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonByOwner(
		ctx context.Context,
		ownerID uint,
	) (*models.Salon, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		salonID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Staff --------
	ListStaff(
		ctx context.Context,
		salonID uint,
	) ([]models.Staff, error)

	CountStaff(
		ctx context.Context,
		salonID uint,
	) (int64, error)

	// -------- Services --------
	GetServices(
		ctx context.Context,
		ownerID uint,
		serviceIDs []uint,
	) ([]models.Service, error)

	// -------- Appointments (read) --------
	ListAppointmentsForDay(
		ctx context.Context,
		salonID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsBetween(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentByReference(
		ctx context.Context,
		reference string,
	) (*models.Appointment, error)

	// -------- Appointments (write) --------

	// AllocateAppointment assigns the first roster member with no
	// conflicting confirmed appointment in [ap.StartAt, ap.EndAt) and
	// persists ap in the same transactional unit. Conflict rows are
	// locked so concurrent allocations cannot double-book a staff
	// member. Returns "no_staff_available" when every member is busy.
	AllocateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		roster []models.Staff,
	) (*models.Staff, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
