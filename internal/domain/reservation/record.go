package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Record is the tagged variant shared by the conflict resolver and the
// availability projector: an approval-gated request or an admin direct
// booking, flattened to the fields conflict and availability logic needs.
type Record struct {
	Ref        RecordRef
	HallIDs    []uuid.UUID
	Window     TimeWindow
	Status     Status // meaningful for KindRequest only
	IsBlackout bool   // meaningful for KindDirect only
	Label      string // purpose (request) or note (direct booking)
	CreatedAt  time.Time
}

// Authoritative records claim exclusivity: direct bookings always, requests
// once approved.
func (r Record) Authoritative() bool {
	return r.Ref.Kind == KindDirect || r.Status == StatusApproved
}

func (r Record) PendingRequest() bool {
	return r.Ref.Kind == KindRequest && r.Status == StatusPending
}

func (r Record) touchesAny(halls map[uuid.UUID]struct{}) []uuid.UUID {
	var touched []uuid.UUID
	for _, id := range r.HallIDs {
		if _, ok := halls[id]; ok {
			touched = append(touched, id)
		}
	}
	return touched
}

func (r *Request) ToRecord() Record {
	return Record{
		Ref:       r.Ref(),
		HallIDs:   r.hallIDs,
		Window:    r.window,
		Status:    r.status,
		Label:     r.purpose,
		CreatedAt: r.createdAt,
	}
}

func (b *DirectBooking) ToRecord() Record {
	return Record{
		Ref:        b.Ref(),
		HallIDs:    b.hallIDs,
		Window:     b.window,
		IsBlackout: b.isBlackout,
		Label:      b.note,
		CreatedAt:  b.createdAt,
	}
}
