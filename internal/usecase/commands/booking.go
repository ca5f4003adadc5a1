package commands

import (
	"context"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	HallIDs    []uuid.UUID
	Window     reservation.TimeWindow
	IsBlackout bool
	Note       string
	CreatedBy  uuid.UUID
}

// DirectBookingCommands are admin-only. Creation is unconditional by design:
// a direct booking is never subject to conflict checks, it becomes a blocking
// record for everyone else the moment it exists.
type DirectBookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error)
	Delete(ctx context.Context, bookingID uuid.UUID) error
}

type directBookingCommandsImpl struct {
	uow        shared.UnitOfWork
	resQueries queries.ReservationQueries
	clock      clock.Clock
}

func NewDirectBookingCommands(
	uow shared.UnitOfWork,
	resQueries queries.ReservationQueries,
	clock clock.Clock,
) DirectBookingCommands {
	return &directBookingCommandsImpl{
		uow:        uow,
		resQueries: resQueries,
		clock:      clock,
	}
}

func (c *directBookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error) {
	entity, err := reservation.NewDirectBooking(
		p.HallIDs, p.Window, p.IsBlackout, p.Note, p.CreatedBy, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		halls, err := tx.Reads().HallsByIDs(ctx, entity.HallIDs())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(halls) != len(entity.HallIDs()) {
			return ErrHallNotFound
		}

		// Same lock order as Approve so an in-flight approval re-check and
		// this insert serialize per hall.
		if err := tx.Locks().AcquireHallLocks(ctx, tx.DB(), entity.HallIDs()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.resQueries.GetBooking(ctx, entity.ID())
}

func (c *directBookingCommandsImpl) Delete(ctx context.Context, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookingByID(ctx, bookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().Delete(ctx, tx.DB(), bookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
