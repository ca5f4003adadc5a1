package shared

import (
	"context"
	"time"

	"hall-booking/internal/domain/hall"
	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/domain/user"
	"hall-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqldb.DBTX) error) error
	// CommandReads: direct access to command-side reads outside transactions.
	CommandReads() CommandReads
}

type Tx interface {
	Requests() RequestRepository
	Bookings() BookingRepository
	Locks() HallLocker
	Reads() CommandReads
	DB() sqldb.DBTX
}

// CommandReads are the write-side validation reads (CQRS separation keeps
// them off the query read models).
type CommandReads interface {
	HallsByIDs(ctx context.Context, ids []uuid.UUID) ([]HallSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// OverlappingRecords fetches every request and direct booking whose hall
	// set intersects hallIDs and whose date range intersects the window's.
	// The date filter is a superset prefilter; the in-memory Overlaps
	// primitive is authoritative.
	OverlappingRecords(ctx context.Context, hallIDs []uuid.UUID, window reservation.TimeWindow) ([]reservation.Record, error)
}

type HallSnapshot struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	Active   bool
}

// ToEntity rehydrates the hall through its domain constructor so stored
// reference data that violates hall invariants is caught at the boundary.
func (s HallSnapshot) ToEntity() (*hall.Hall, error) {
	return hall.NewHall(s.ID, s.Name, s.Capacity, s.Active)
}

type RequestSnapshot struct {
	ID              uuid.UUID
	RequesterID     uuid.UUID
	RequesterRole   user.Role
	HallIDs         []uuid.UUID
	Window          reservation.TimeWindow
	Status          reservation.Status
	Purpose         string
	AttendeeCount   int
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *RequestSnapshot) ToEntity() *reservation.Request {
	return reservation.ReconstructRequest(
		s.ID, s.RequesterID, s.RequesterRole, s.HallIDs, s.Window,
		s.Status, s.Purpose, s.AttendeeCount, s.RejectionReason,
		s.CreatedAt, s.UpdatedAt,
	)
}

type BookingSnapshot struct {
	ID         uuid.UUID
	HallIDs    []uuid.UUID
	Window     reservation.TimeWindow
	IsBlackout bool
	Note       string
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}

type RequestRepository interface {
	Create(ctx context.Context, db sqldb.DBTX, req *reservation.Request) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db sqldb.DBTX, req *reservation.Request) error
	// Delete removes the request and its hall associations; both-or-neither
	// inside the surrounding transaction.
	Delete(ctx context.Context, db sqldb.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, db sqldb.DBTX, b *reservation.DirectBooking) (uuid.UUID, error)
	Delete(ctx context.Context, db sqldb.DBTX, id uuid.UUID) error
}

// HallLocker serializes approve/direct-booking writes per hall. Locks are
// transaction-scoped advisory locks; acquisition order is sorted to avoid
// deadlocks between callers locking overlapping hall sets.
type HallLocker interface {
	AcquireHallLocks(ctx context.Context, db sqldb.DBTX, hallIDs []uuid.UUID) error
}
