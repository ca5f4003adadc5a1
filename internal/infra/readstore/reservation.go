package readstore

import (
	"context"
	"errors"
	"time"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/domain/user"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/sqldb"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db sqldb.DBTX
}

func NewReservationReadStore(db sqldb.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const requestViewQuery = `
	SELECT r.id, r.requester_id, r.requester_role,
	       r.start_date, r.end_date, r.start_minute, r.end_minute,
	       r.status, r.purpose, r.attendee_count, r.rejection_reason,
	       r.created_at, r.updated_at,
	       array_agg(h.id ORDER BY h.name)   AS hall_ids,
	       array_agg(h.name ORDER BY h.name) AS hall_names
	FROM reservation_requests r
	JOIN request_halls rh ON rh.request_id = r.id
	JOIN halls h ON h.id = rh.hall_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := s.db.QueryRow(ctx, requestViewQuery+`
		WHERE r.id = $1
		GROUP BY r.id`, id)

	view, err := scanRequestView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := s.db.Query(ctx, requestViewQuery+`
		WHERE r.requester_id = $1
		GROUP BY r.id
		ORDER BY r.created_at DESC`, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by requester", err)
	}
	defer rows.Close()

	return scanRequestViews(rows)
}

func (s *ReservationReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.RequestView, error) {
	rows, err := s.db.Query(ctx, requestViewQuery+`
		WHERE r.status = $1
		GROUP BY r.id
		ORDER BY r.created_at ASC`, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by status", err)
	}
	defer rows.Close()

	return scanRequestViews(rows)
}

func (s *ReservationReadStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT b.id, b.start_date, b.end_date, b.start_minute, b.end_minute,
		       b.is_blackout, b.note, b.created_by, b.created_at,
		       array_agg(h.id ORDER BY h.name)   AS hall_ids,
		       array_agg(h.name ORDER BY h.name) AS hall_names
		FROM direct_bookings b
		JOIN booking_halls bh ON bh.booking_id = b.id
		JOIN halls h ON h.id = bh.hall_id
		WHERE b.id = $1
		GROUP BY b.id`, id)

	var (
		v                  queries.BookingView
		startDate, endDate time.Time
		startMin, endMin   int
		hallIDs            []uuid.UUID
		hallNames          []string
	)
	if err := row.Scan(
		&v.ID, &startDate, &endDate, &startMin, &endMin,
		&v.IsBlackout, &v.Note, &v.CreatedBy, &v.CreatedAt,
		&hallIDs, &hallNames,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	v.StartDate = startDate.Format("2006-01-02")
	v.EndDate = endDate.Format("2006-01-02")
	v.StartTime = reservation.FormatMinute(startMin)
	v.EndTime = reservation.FormatMinute(endMin)
	v.Halls = hallRefs(hallIDs, hallNames)
	return &v, nil
}

// RequestSnapshotByID is the write-side read: it rebuilds the domain window
// instead of formatting it for display.
func (s *ReservationReadStore) RequestSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	row := s.db.QueryRow(ctx, `
		SELECT r.id, r.requester_id, r.requester_role,
		       r.start_date, r.end_date, r.start_minute, r.end_minute,
		       r.status, r.purpose, r.attendee_count, r.rejection_reason,
		       r.created_at, r.updated_at,
		       array_agg(rh.hall_id) AS hall_ids
		FROM reservation_requests r
		JOIN request_halls rh ON rh.request_id = r.id
		WHERE r.id = $1
		GROUP BY r.id`, id)

	var (
		snap               shared.RequestSnapshot
		role, status       string
		startDate, endDate time.Time
		startMin, endMin   int
	)
	if err := row.Scan(
		&snap.ID, &snap.RequesterID, &role,
		&startDate, &endDate, &startMin, &endMin,
		&status, &snap.Purpose, &snap.AttendeeCount, &snap.RejectionReason,
		&snap.CreatedAt, &snap.UpdatedAt,
		&snap.HallIDs,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load request snapshot", err)
	}

	window, err := reservation.NewTimeWindow(startDate, endDate, startMin, endMin)
	if err != nil {
		return nil, infra.WrapRepoErr("stored request window is invalid", err)
	}
	snap.RequesterRole = user.Role(role)
	snap.Window = window
	snap.Status = reservation.Status(status)
	return &snap, nil
}

func (s *ReservationReadStore) BookingSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row := s.db.QueryRow(ctx, `
		SELECT b.id, b.start_date, b.end_date, b.start_minute, b.end_minute,
		       b.is_blackout, b.note, b.created_by, b.created_at,
		       array_agg(bh.hall_id) AS hall_ids
		FROM direct_bookings b
		JOIN booking_halls bh ON bh.booking_id = b.id
		WHERE b.id = $1
		GROUP BY b.id`, id)

	var (
		snap               shared.BookingSnapshot
		startDate, endDate time.Time
		startMin, endMin   int
	)
	if err := row.Scan(
		&snap.ID, &startDate, &endDate, &startMin, &endMin,
		&snap.IsBlackout, &snap.Note, &snap.CreatedBy, &snap.CreatedAt,
		&snap.HallIDs,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking snapshot", err)
	}

	window, err := reservation.NewTimeWindow(startDate, endDate, startMin, endMin)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking window is invalid", err)
	}
	snap.Window = window
	return &snap, nil
}

func scanRequestViews(rows pgx.Rows) ([]*queries.RequestView, error) {
	var out []*queries.RequestView
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return out, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var (
		v                  queries.RequestView
		startDate, endDate time.Time
		startMin, endMin   int
		hallIDs            []uuid.UUID
		hallNames          []string
	)
	if err := row.Scan(
		&v.ID, &v.RequesterID, &v.RequesterRole,
		&startDate, &endDate, &startMin, &endMin,
		&v.Status, &v.Purpose, &v.AttendeeCount, &v.RejectionReason,
		&v.CreatedAt, &v.UpdatedAt,
		&hallIDs, &hallNames,
	); err != nil {
		return nil, err
	}

	v.StartDate = startDate.Format("2006-01-02")
	v.EndDate = endDate.Format("2006-01-02")
	v.StartTime = reservation.FormatMinute(startMin)
	v.EndTime = reservation.FormatMinute(endMin)
	v.Halls = hallRefs(hallIDs, hallNames)
	return &v, nil
}

func hallRefs(ids []uuid.UUID, names []string) []queries.HallRefView {
	refs := make([]queries.HallRefView, len(ids))
	for i := range ids {
		refs[i] = queries.HallRefView{ID: ids[i], Name: names[i]}
	}
	return refs
}
