package repository

import (
	"context"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, db sqldb.DBTX, b *reservation.DirectBooking) (uuid.UUID, error) {
	w := b.Window()
	_, err := db.Exec(ctx, `
		INSERT INTO direct_bookings
			(id, start_date, end_date, start_minute, end_minute, is_blackout, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID(), w.StartDate(), w.EndDate(), w.StartMinute(), w.EndMinute(),
		b.IsBlackout(), b.Note(), b.CreatedBy(), b.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert direct booking", err)
	}

	for _, hallID := range b.HallIDs() {
		if _, err := db.Exec(ctx,
			`INSERT INTO booking_halls (booking_id, hall_id) VALUES ($1, $2)`,
			b.ID(), hallID,
		); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert booking hall association", err)
		}
	}

	return b.ID(), nil
}

func (r *BookingRepository) Delete(ctx context.Context, db sqldb.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM direct_bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete direct booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("direct booking not found for delete", nil, infra.KindNotFound)
	}
	return nil
}
