package readstore

import (
	"context"
	"time"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

// RecordReadStore loads the flattened conflict/availability records. The SQL
// filters by date-range and hall intersection only; that is a superset of the
// true overlap set, and callers run the domain Overlaps primitive on it.
type RecordReadStore struct {
	db sqldb.DBTX
}

func NewRecordReadStore(db sqldb.DBTX) *RecordReadStore {
	return &RecordReadStore{db: db}
}

func (s *RecordReadStore) OverlappingRecords(ctx context.Context, hallIDs []uuid.UUID, window reservation.TimeWindow) ([]reservation.Record, error) {
	var records []reservation.Record

	requests, err := s.overlappingRequests(ctx, hallIDs, window)
	if err != nil {
		return nil, err
	}
	records = append(records, requests...)

	bookings, err := s.overlappingBookings(ctx, hallIDs, window)
	if err != nil {
		return nil, err
	}
	records = append(records, bookings...)

	return records, nil
}

func (s *RecordReadStore) overlappingRequests(ctx context.Context, hallIDs []uuid.UUID, window reservation.TimeWindow) ([]reservation.Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.start_date, r.end_date, r.start_minute, r.end_minute,
		       r.status, r.purpose, r.created_at,
		       array_agg(rh.hall_id) AS hall_ids
		FROM reservation_requests r
		JOIN request_halls rh ON rh.request_id = r.id
		WHERE r.status <> 'rejected'
		  AND r.start_date <= $1 AND r.end_date >= $2
		  AND EXISTS (
		      SELECT 1 FROM request_halls x
		      WHERE x.request_id = r.id AND x.hall_id = ANY($3)
		  )
		GROUP BY r.id`,
		window.EndDate(), window.StartDate(), hallIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping requests", err)
	}
	defer rows.Close()

	var records []reservation.Record
	for rows.Next() {
		var (
			id                 uuid.UUID
			startDate, endDate time.Time
			startMin, endMin   int
			status, purpose    string
			createdAt          time.Time
			ids                []uuid.UUID
		)
		if err := rows.Scan(&id, &startDate, &endDate, &startMin, &endMin,
			&status, &purpose, &createdAt, &ids); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request record", err)
		}

		w, err := reservation.NewTimeWindow(startDate, endDate, startMin, endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("stored request window is invalid", err)
		}
		records = append(records, reservation.Record{
			Ref:       reservation.RecordRef{Kind: reservation.KindRequest, ID: id},
			HallIDs:   ids,
			Window:    w,
			Status:    reservation.Status(status),
			Label:     purpose,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request records", err)
	}
	return records, nil
}

func (s *RecordReadStore) overlappingBookings(ctx context.Context, hallIDs []uuid.UUID, window reservation.TimeWindow) ([]reservation.Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.start_date, b.end_date, b.start_minute, b.end_minute,
		       b.is_blackout, b.note, b.created_at,
		       array_agg(bh.hall_id) AS hall_ids
		FROM direct_bookings b
		JOIN booking_halls bh ON bh.booking_id = b.id
		WHERE b.start_date <= $1 AND b.end_date >= $2
		  AND EXISTS (
		      SELECT 1 FROM booking_halls x
		      WHERE x.booking_id = b.id AND x.hall_id = ANY($3)
		  )
		GROUP BY b.id`,
		window.EndDate(), window.StartDate(), hallIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer rows.Close()

	var records []reservation.Record
	for rows.Next() {
		var (
			id                 uuid.UUID
			startDate, endDate time.Time
			startMin, endMin   int
			isBlackout         bool
			note               string
			createdAt          time.Time
			ids                []uuid.UUID
		)
		if err := rows.Scan(&id, &startDate, &endDate, &startMin, &endMin,
			&isBlackout, &note, &createdAt, &ids); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking record", err)
		}

		w, err := reservation.NewTimeWindow(startDate, endDate, startMin, endMin)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking window is invalid", err)
		}
		records = append(records, reservation.Record{
			Ref:        reservation.RecordRef{Kind: reservation.KindDirect, ID: id},
			HallIDs:    ids,
			Window:     w,
			IsBlackout: isBlackout,
			Label:      note,
			CreatedAt:  createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking records", err)
	}
	return records, nil
}
