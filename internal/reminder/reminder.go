package reminder

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/onligro/salon-scheduler/internal/domain/booking"
	"github.com/onligro/salon-scheduler/internal/models"
	"github.com/onligro/salon-scheduler/internal/timezone"
)

// Service sweeps confirmed appointments once a day and emits a
// reminder event for every booking scheduled on the following day.
type Service struct {
	db       *gorm.DB
	notifier domain.Notifier
	log      zerolog.Logger
	cron     *cron.Cron
}

type ReminderPayload struct {
	Reference     string `json:"reference"`
	SalonID       uint   `json:"salon_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	StartAt       string `json:"start_at"`
}

func NewService(db *gorm.DB, notifier domain.Notifier, log zerolog.Logger) *Service {
	return &Service{
		db:       db,
		notifier: notifier,
		log:      log.With().Str("component", "reminder").Logger(),
	}
}

// Start schedules the daily sweep at 09:00 in the default timezone.
func (s *Service) Start() error {
	s.cron = cron.New(cron.WithLocation(timezone.Location(timezone.DefaultTimezone)))
	if _, err := s.cron.AddFunc("0 9 * * *", s.SweepTomorrow); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info().Msg("reminder scheduler started")
	return nil
}

func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SweepTomorrow emits a reminder for every confirmed appointment whose
// start falls on the next calendar day of its salon's timezone.
func (s *Service) SweepTomorrow() {
	var salons []models.Salon
	if err := s.db.Find(&salons).Error; err != nil {
		s.log.Error().Err(err).Msg("failed to fetch salons")
		return
	}

	total := 0
	for _, salon := range salons {
		total += s.sweepSalon(&salon)
	}

	s.log.Info().Int("reminders", total).Msg("daily reminder sweep completed")
}

func (s *Service) sweepSalon(salon *models.Salon) int {
	loc := timezone.Location(salon.Timezone)
	now := time.Now().In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.
		Where("salon_id = ? AND status = ? AND start_at >= ? AND start_at < ?",
			salon.ID, domain.StatusConfirmed, dayStart, dayEnd).
		Find(&appointments).Error; err != nil {
		s.log.Error().Err(err).Uint("salon_id", salon.ID).Msg("failed to fetch appointments")
		return 0
	}

	for _, ap := range appointments {
		s.notifier.Emit(domain.EventAppointmentReminder, ReminderPayload{
			Reference:     ap.Reference,
			SalonID:       ap.SalonID,
			CustomerName:  ap.CustomerName,
			CustomerPhone: ap.CustomerPhone,
			StartAt:       ap.StartAt.In(loc).Format(time.RFC3339),
		})
	}

	return len(appointments)
}
