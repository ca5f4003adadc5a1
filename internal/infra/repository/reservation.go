package repository

import (
	"context"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, db sqldb.DBTX, req *reservation.Request) (uuid.UUID, error) {
	w := req.Window()
	_, err := db.Exec(ctx, `
		INSERT INTO reservation_requests
			(id, requester_id, requester_role, start_date, end_date, start_minute, end_minute,
			 status, purpose, attendee_count, rejection_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		req.ID(), req.RequesterID(), req.RequesterRole().String(),
		w.StartDate(), w.EndDate(), w.StartMinute(), w.EndMinute(),
		req.Status().String(), req.Purpose(), req.AttendeeCount(), req.RejectionReason(),
		req.CreatedAt(), req.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation request", err)
	}

	for _, hallID := range req.HallIDs() {
		if _, err := db.Exec(ctx,
			`INSERT INTO request_halls (request_id, hall_id) VALUES ($1, $2)`,
			req.ID(), hallID,
		); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert request hall association", err)
		}
	}

	return req.ID(), nil
}

// UpdateStatus writes a pending→decided transition. The pending guard makes
// the write the arbiter under concurrency: a racing decision that committed
// first leaves zero rows here, never a silent overwrite.
func (r *RequestRepository) UpdateStatus(ctx context.Context, db sqldb.DBTX, req *reservation.Request) error {
	tag, err := db.Exec(ctx, `
		UPDATE reservation_requests
		SET status = $2, rejection_reason = $3, updated_at = $4
		WHERE id = $1 AND status = 'pending'`,
		req.ID(), req.Status().String(), req.RejectionReason(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update request status", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if qerr := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM reservation_requests WHERE id = $1)`, req.ID(),
		).Scan(&exists); qerr == nil && !exists {
			return infra.WrapRepoErr("request not found for status update", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("request is no longer pending", nil, infra.KindConflict)
	}
	return nil
}

// Delete removes the request row; hall associations go with it via
// ON DELETE CASCADE, so both disappear or neither does.
func (r *RequestRepository) Delete(ctx context.Context, db sqldb.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM reservation_requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found for delete", nil, infra.KindNotFound)
	}
	return nil
}
