package reservation

import "github.com/google/uuid"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the status is terminal for the approval flow.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

// Kind tags the two reservation variants that share hall allocation.
type Kind string

const (
	KindRequest Kind = "request"
	KindDirect  Kind = "direct_booking"
)

func (k Kind) String() string {
	return string(k)
}

// RecordRef identifies a reservation record of either kind.
type RecordRef struct {
	Kind Kind
	ID   uuid.UUID
}
