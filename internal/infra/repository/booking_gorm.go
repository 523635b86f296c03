package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/httperr"
	"github.com/onligro/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonByOwner(
	ctx context.Context,
	ownerID uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	salonID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *BookingGormRepository) ListStaff(
	ctx context.Context,
	salonID uint,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *BookingGormRepository) CountStaff(
	ctx context.Context,
	salonID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("salon_id = ?", salonID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetServices(
	ctx context.Context,
	ownerID uint,
	serviceIDs []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND owner_id = ?", serviceIDs, ownerID).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointments (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	salonID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "staff_id", "start_at", "end_at").
		Where(
			"salon_id = ? AND status <> 'cancelled' AND start_at < ? AND end_at > ?",
			salonID, dayEnd, dayStart,
		).
		Order("start_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	salonID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Services").
		Where(
			"salon_id = ? AND start_at >= ? AND start_at < ?",
			salonID, start, end,
		).
		Order("start_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentByReference(
	ctx context.Context,
	reference string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Services").
		Preload("Salon").
		Where("reference = ?", reference).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointments (write)
// --------------------------------------------------

// Namespace for the per-staff advisory locks, so the keys cannot
// collide with any other advisory lock user on the same database.
const staffAllocationLockClass = 7001

// staffAllocationLock serializes allocation for one staff member until
// the surrounding transaction ends. Row locks cannot do this: a free
// member has no conflicting rows to lock, so two concurrent checks
// would both count zero and both insert.
func staffAllocationLock(tx *gorm.DB, staffID uint) *gorm.DB {
	return tx.Exec(
		"SELECT pg_advisory_xact_lock(?, ?)",
		staffAllocationLockClass, int32(staffID),
	)
}

// staffConflictScan counts confirmed appointments of one staff member
// overlapping [startAt, endAt). Plain count, no locking clause: the
// advisory lock provides the serialization, and FOR UPDATE is invalid
// on an aggregate query.
func staffConflictScan(tx *gorm.DB, staffID uint, startAt, endAt time.Time, count *int64) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Where(
			"staff_id = ? AND status <> 'cancelled' AND start_at < ? AND end_at > ?",
			staffID, endAt, startAt,
		).
		Count(count)
}

// AllocateAppointment walks the roster in the given order and books the
// first member with no conflicting confirmed appointment. Each member
// is checked under a transaction-scoped advisory lock, so two
// concurrent bookings of the same member serialize and the loser moves
// on to the next candidate or fails.
func (r *BookingGormRepository) AllocateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	roster []models.Staff,
) (*models.Staff, error) {

	var assigned *models.Staff

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range roster {
			staff := &roster[i]

			if err := staffAllocationLock(tx, staff.ID).Error; err != nil {
				return err
			}

			var count int64
			if err := staffConflictScan(tx, staff.ID, ap.StartAt, ap.EndAt, &count).Error; err != nil {
				return err
			}

			if count == 0 {
				assigned = staff
				break
			}
		}

		if assigned == nil {
			return httperr.ErrBusiness("no_staff_available")
		}

		ap.StaffID = assigned.ID
		return tx.Create(ap).Error
	})

	if err != nil {
		return nil, err
	}

	return assigned, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
