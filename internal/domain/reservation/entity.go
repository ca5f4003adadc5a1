package reservation

import (
	"errors"
	"strings"
	"time"

	"hall-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyHallSet         = errors.New("hall set cannot be empty")
	ErrEmptyPurpose         = errors.New("purpose cannot be empty")
	ErrInvalidAttendees     = errors.New("attendee count must be positive")
	ErrAttendeesOverCap     = errors.New("attendee count exceeds combined hall capacity")
	ErrEmptyReason          = errors.New("rejection reason cannot be empty")
	ErrAlreadyDecided       = errors.New("request is already decided")
	ErrNotOwner             = errors.New("request belongs to a different requester")
	ErrNotDeletable         = errors.New("only pending requests can be deleted")
	ErrInvalidRequesterRole = errors.New("invalid requester role")
)

// Request is an approval-gated reservation proposal. It is mutated only by
// lifecycle transitions; requesters can delete it while pending but never
// edit it.
type Request struct {
	id              uuid.UUID
	requesterID     uuid.UUID
	requesterRole   user.Role
	hallIDs         []uuid.UUID
	window          TimeWindow
	status          Status
	purpose         string
	attendeeCount   int
	rejectionReason *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRequest(
	requesterID uuid.UUID,
	role user.Role,
	hallIDs []uuid.UUID,
	window TimeWindow,
	purpose string,
	attendeeCount int,
	now time.Time,
) (*Request, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRequesterRole
	}
	if len(hallIDs) == 0 {
		return nil, ErrEmptyHallSet
	}
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return nil, ErrEmptyPurpose
	}
	if attendeeCount <= 0 {
		return nil, ErrInvalidAttendees
	}

	return &Request{
		id:            uuid.New(),
		requesterID:   requesterID,
		requesterRole: role,
		hallIDs:       dedupeHalls(hallIDs),
		window:        window,
		status:        StatusPending,
		purpose:       purpose,
		attendeeCount: attendeeCount,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRequest(
	id, requesterID uuid.UUID,
	role user.Role,
	hallIDs []uuid.UUID,
	window TimeWindow,
	status Status,
	purpose string,
	attendeeCount int,
	rejectionReason *string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		requesterID:     requesterID,
		requesterRole:   role,
		hallIDs:         hallIDs,
		window:          window,
		status:          status,
		purpose:         purpose,
		attendeeCount:   attendeeCount,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Approve transitions Pending -> Approved. Decisions are terminal; approving
// a decided request fails.
func (r *Request) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyDecided
	}
	r.status = StatusApproved
	r.updatedAt = now
	return nil
}

// Reject transitions Pending -> Rejected. The reason is a hard validation
// contract, not optional.
func (r *Request) Reject(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyReason
	}
	if r.status != StatusPending {
		return ErrAlreadyDecided
	}
	r.status = StatusRejected
	r.rejectionReason = &reason
	r.updatedAt = now
	return nil
}

// AuthorizeDeletion checks the owner-only, pending-only deletion rule.
func (r *Request) AuthorizeDeletion(byUserID uuid.UUID) error {
	if r.requesterID != byUserID {
		return ErrNotOwner
	}
	if r.status != StatusPending {
		return ErrNotDeletable
	}
	return nil
}

func (r *Request) ID() uuid.UUID            { return r.id }
func (r *Request) RequesterID() uuid.UUID   { return r.requesterID }
func (r *Request) RequesterRole() user.Role { return r.requesterRole }
func (r *Request) HallIDs() []uuid.UUID     { return r.hallIDs }
func (r *Request) Window() TimeWindow       { return r.window }
func (r *Request) Status() Status           { return r.status }
func (r *Request) Purpose() string          { return r.purpose }
func (r *Request) AttendeeCount() int       { return r.attendeeCount }
func (r *Request) RejectionReason() *string { return r.rejectionReason }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }
func (r *Request) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Request) Ref() RecordRef {
	return RecordRef{Kind: KindRequest, ID: r.id}
}

// DirectBooking is an admin-created allocation with no approval step. It may
// flag a blackout, an admin-declared unavailability with no real event.
type DirectBooking struct {
	id         uuid.UUID
	hallIDs    []uuid.UUID
	window     TimeWindow
	isBlackout bool
	note       string
	createdBy  uuid.UUID
	createdAt  time.Time
}

func NewDirectBooking(
	hallIDs []uuid.UUID,
	window TimeWindow,
	isBlackout bool,
	note string,
	createdBy uuid.UUID,
	now time.Time,
) (*DirectBooking, error) {
	if len(hallIDs) == 0 {
		return nil, ErrEmptyHallSet
	}
	return &DirectBooking{
		id:         uuid.New(),
		hallIDs:    dedupeHalls(hallIDs),
		window:     window,
		isBlackout: isBlackout,
		note:       strings.TrimSpace(note),
		createdBy:  createdBy,
		createdAt:  now,
	}, nil
}

func ReconstructDirectBooking(
	id uuid.UUID,
	hallIDs []uuid.UUID,
	window TimeWindow,
	isBlackout bool,
	note string,
	createdBy uuid.UUID,
	createdAt time.Time,
) *DirectBooking {
	return &DirectBooking{
		id:         id,
		hallIDs:    hallIDs,
		window:     window,
		isBlackout: isBlackout,
		note:       note,
		createdBy:  createdBy,
		createdAt:  createdAt,
	}
}

func (b *DirectBooking) ID() uuid.UUID        { return b.id }
func (b *DirectBooking) HallIDs() []uuid.UUID { return b.hallIDs }
func (b *DirectBooking) Window() TimeWindow   { return b.window }
func (b *DirectBooking) IsBlackout() bool     { return b.isBlackout }
func (b *DirectBooking) Note() string         { return b.note }
func (b *DirectBooking) CreatedBy() uuid.UUID { return b.createdBy }
func (b *DirectBooking) CreatedAt() time.Time { return b.createdAt }

func (b *DirectBooking) Ref() RecordRef {
	return RecordRef{Kind: KindDirect, ID: b.id}
}

func dedupeHalls(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
