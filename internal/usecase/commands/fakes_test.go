//go:build unit

package commands_test

import (
	"context"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/sqldb"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the persistence layer. One instance
// backs the unit of work, the command reads and the read queries so a test
// observes its own writes the way a committed transaction would.
type fakeStore struct {
	halls    map[uuid.UUID]shared.HallSnapshot
	requests map[uuid.UUID]*shared.RequestSnapshot
	bookings map[uuid.UUID]*shared.BookingSnapshot
	records  []reservation.Record

	lockCalls   [][]uuid.UUID
	deletedReqs []uuid.UUID

	overlapErr error

	// afterLoadRequest runs once after a snapshot is handed out, simulating a
	// concurrent transaction committing between the read and the write.
	afterLoadRequest func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		halls:    make(map[uuid.UUID]shared.HallSnapshot),
		requests: make(map[uuid.UUID]*shared.RequestSnapshot),
		bookings: make(map[uuid.UUID]*shared.BookingSnapshot),
	}
}

func (s *fakeStore) addHall(id uuid.UUID, capacity int, active bool) {
	s.halls[id] = shared.HallSnapshot{ID: id, Name: "Hall " + id.String()[:8], Capacity: capacity, Active: active}
}

func (s *fakeStore) addRequest(snap *shared.RequestSnapshot) {
	s.requests[snap.ID] = snap
}

func (s *fakeStore) HallsByIDs(_ context.Context, ids []uuid.UUID) ([]shared.HallSnapshot, error) {
	out := make([]shared.HallSnapshot, 0, len(ids))
	for _, id := range ids {
		if h, ok := s.halls[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *fakeStore) RequestByID(_ context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	snap, ok := s.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	cp := *snap
	if s.afterLoadRequest != nil {
		fn := s.afterLoadRequest
		s.afterLoadRequest = nil
		fn()
	}
	return &cp, nil
}

func (s *fakeStore) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (s *fakeStore) OverlappingRecords(_ context.Context, _ []uuid.UUID, _ reservation.TimeWindow) ([]reservation.Record, error) {
	if s.overlapErr != nil {
		return nil, s.overlapErr
	}
	return s.records, nil
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUow) WithDB(ctx context.Context, fn func(ctx context.Context, db sqldb.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUow) CommandReads() shared.CommandReads {
	return u.store
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Requests() shared.RequestRepository { return &fakeRequestRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Locks() shared.HallLocker           { return &fakeLocker{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads         { return t.store }
func (t *fakeTx) DB() sqldb.DBTX                     { return nil }

type fakeRequestRepo struct {
	store *fakeStore
}

func (r *fakeRequestRepo) Create(_ context.Context, _ sqldb.DBTX, req *reservation.Request) (uuid.UUID, error) {
	r.store.requests[req.ID()] = snapshotOf(req)
	return req.ID(), nil
}

// UpdateStatus mirrors the real repository's pending guard: a row already
// decided by a concurrent writer rejects the update instead of being
// overwritten.
func (r *fakeRequestRepo) UpdateStatus(_ context.Context, _ sqldb.DBTX, req *reservation.Request) error {
	cur, ok := r.store.requests[req.ID()]
	if !ok {
		return infra.WrapRepoErr("request not found for status update", nil, infra.KindNotFound)
	}
	if cur.Status != reservation.StatusPending {
		return infra.WrapRepoErr("request is no longer pending", nil, infra.KindConflict)
	}
	r.store.requests[req.ID()] = snapshotOf(req)
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, _ sqldb.DBTX, id uuid.UUID) error {
	delete(r.store.requests, id)
	r.store.deletedReqs = append(r.store.deletedReqs, id)
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, _ sqldb.DBTX, b *reservation.DirectBooking) (uuid.UUID, error) {
	r.store.bookings[b.ID()] = &shared.BookingSnapshot{
		ID:         b.ID(),
		HallIDs:    b.HallIDs(),
		Window:     b.Window(),
		IsBlackout: b.IsBlackout(),
		Note:       b.Note(),
		CreatedBy:  b.CreatedBy(),
		CreatedAt:  b.CreatedAt(),
	}
	return b.ID(), nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ sqldb.DBTX, id uuid.UUID) error {
	delete(r.store.bookings, id)
	return nil
}

type fakeLocker struct {
	store *fakeStore
}

func (l *fakeLocker) AcquireHallLocks(_ context.Context, _ sqldb.DBTX, hallIDs []uuid.UUID) error {
	l.store.lockCalls = append(l.store.lockCalls, hallIDs)
	return nil
}

func snapshotOf(req *reservation.Request) *shared.RequestSnapshot {
	return &shared.RequestSnapshot{
		ID:              req.ID(),
		RequesterID:     req.RequesterID(),
		RequesterRole:   req.RequesterRole(),
		HallIDs:         req.HallIDs(),
		Window:          req.Window(),
		Status:          req.Status(),
		Purpose:         req.Purpose(),
		AttendeeCount:   req.AttendeeCount(),
		RejectionReason: req.RejectionReason(),
		CreatedAt:       req.CreatedAt(),
		UpdatedAt:       req.UpdatedAt(),
	}
}

// fakeQueries serves the post-commit read-back straight from the store.
type fakeQueries struct {
	store *fakeStore
}

func (q *fakeQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	snap, ok := q.store.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return &queries.RequestView{
		ID:              snap.ID,
		RequesterID:     snap.RequesterID,
		RequesterRole:   snap.RequesterRole.String(),
		Status:          string(snap.Status),
		Purpose:         snap.Purpose,
		AttendeeCount:   snap.AttendeeCount,
		RejectionReason: snap.RejectionReason,
	}, nil
}

func (q *fakeQueries) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	var out []*queries.RequestView
	for id, snap := range q.store.requests {
		if snap.RequesterID == requesterID {
			v, _ := q.GetByID(context.Background(), id)
			out = append(out, v)
		}
	}
	return out, nil
}

func (q *fakeQueries) ListPending(_ context.Context) ([]*queries.RequestView, error) {
	var out []*queries.RequestView
	for id, snap := range q.store.requests {
		if snap.Status == reservation.StatusPending {
			v, _ := q.GetByID(context.Background(), id)
			out = append(out, v)
		}
	}
	return out, nil
}

func (q *fakeQueries) GetBooking(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	snap, ok := q.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &queries.BookingView{
		ID:         snap.ID,
		IsBlackout: snap.IsBlackout,
		Note:       snap.Note,
		CreatedBy:  snap.CreatedBy,
		CreatedAt:  snap.CreatedAt,
	}, nil
}

type publishedEvent struct {
	topic   string
	payload any
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, payload any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{topic: routingKey, payload: payload})
	return nil
}
