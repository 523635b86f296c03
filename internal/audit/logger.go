package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/models"
)

type Event struct {
	SalonID  uint
	OwnerID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Writer persists audit events. Satisfied by *Logger in production and
// by fakes in tests.
type Writer interface {
	Write(ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		SalonID:  ev.SalonID,
		OwnerID:  ev.OwnerID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
