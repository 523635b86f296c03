package booking

const (
	EventSlotsUpdate         = "slots_update"
	EventAppointmentReminder = "appointment_reminder"
)

// SlotsUpdatePayload tells open slot-viewers for a salon/date to
// refresh. Delivery is best-effort, at most once.
type SlotsUpdatePayload struct {
	SalonID uint   `json:"salon_id"`
	Date    string `json:"date"`
}

// Notifier is the fire-and-forget realtime sink. Implementations must
// never block the calling request.
type Notifier interface {
	Emit(event string, payload any)
}
