package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RequestView struct {
	ID              uuid.UUID      `json:"id"`
	RequesterID     uuid.UUID      `json:"requester_id"`
	RequesterRole   string         `json:"requester_role"`
	Halls           []HallRefView  `json:"halls"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	StartTime       string         `json:"start_time"`
	EndTime         string         `json:"end_time"`
	Status          string         `json:"status"`
	Purpose         string         `json:"purpose"`
	AttendeeCount   int            `json:"attendee_count"`
	RejectionReason *string        `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type HallRefView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID         uuid.UUID     `json:"id"`
	Halls      []HallRefView `json:"halls"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	IsBlackout bool          `json:"is_blackout"`
	Note       string        `json:"note,omitempty"`
	CreatedBy  uuid.UUID     `json:"created_by"`
	CreatedAt  time.Time     `json:"created_at"`
}

type HallView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Active   bool      `json:"active"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListPending(ctx context.Context) ([]*RequestView, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindByStatus(ctx context.Context, status string) ([]*RequestView, error)
	FindBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type reservationQueriesImpl struct {
	store RequestReadStore
}

func NewReservationQueries(store RequestReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	return q.store.FindByRequester(ctx, requesterID)
}

func (q *reservationQueriesImpl) ListPending(ctx context.Context) ([]*RequestView, error) {
	return q.store.FindByStatus(ctx, "pending")
}

func (q *reservationQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindBookingByID(ctx, id)
}
