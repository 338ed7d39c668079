package reservation

type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCompleted Status = "Completed"
)

// ChangeChannel is the logical channel change events are published on.
const ChangeChannel = "reservation_change"

type ChangeKind string

const (
	ChangeCreated   ChangeKind = "created"
	ChangeCompleted ChangeKind = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCompleted:
		return true
	default:
		return false
	}
}
