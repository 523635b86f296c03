package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// CanCancel is always true: confirmed appointments move to cancelled,
// and cancelling an already-cancelled appointment is a harmless no-op.
func CanCancel(current Status) bool {
	return current == StatusConfirmed || current == StatusCancelled
}
