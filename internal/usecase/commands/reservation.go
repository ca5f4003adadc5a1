package commands

import (
	"context"
	"errors"
	"log/slog"

	"hall-booking/internal/domain/hall"
	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/domain/user"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestParams struct {
	RequesterID   uuid.UUID
	Role          user.Role
	HallIDs       []uuid.UUID
	Window        reservation.TimeWindow
	Purpose       string
	AttendeeCount int
}

type ReservationCommands interface {
	Create(ctx context.Context, p CreateRequestParams) (*queries.RequestView, error)
	Approve(ctx context.Context, requestID uuid.UUID, adminNote *string) (*queries.RequestView, error)
	Reject(ctx context.Context, requestID uuid.UUID, reason string) (*queries.RequestView, error)
	Delete(ctx context.Context, requestID, byUserID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	resQueries queries.ReservationQueries
	publisher  EventPublisher
	clock      clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	resQueries queries.ReservationQueries,
	publisher EventPublisher,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:        uow,
		resQueries: resQueries,
		publisher:  publisher,
		clock:      clock,
	}
}

// Create validates the candidate window against the role-asymmetric conflict
// policy and persists a pending request when clear.
func (c *reservationCommandsImpl) Create(ctx context.Context, p CreateRequestParams) (*queries.RequestView, error) {
	entity, err := reservation.NewRequest(
		p.RequesterID, p.Role, p.HallIDs, p.Window, p.Purpose, p.AttendeeCount, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.validateHalls(ctx, tx.Reads(), entity.HallIDs(), entity.AttendeeCount()); err != nil {
			return err
		}

		records, err := tx.Reads().OverlappingRecords(ctx, entity.HallIDs(), entity.Window())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		verdict := reservation.Resolve(records, entity.HallIDs(), entity.Window(), p.Role)
		if !verdict.Clear() {
			return newConflictError(verdict, false)
		}

		if _, err := tx.Requests().Create(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, TopicRequestCreated, requestPayload(entity, nil, ""))

	return c.resQueries.GetByID(ctx, entity.ID())
}

// Approve re-runs the conflict check under per-hall locks before committing,
// closing the race where two admins approve overlapping pending requests.
func (c *reservationCommandsImpl) Approve(ctx context.Context, requestID uuid.UUID, adminNote *string) (*queries.RequestView, error) {
	var entity *reservation.Request

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.loadRequest(ctx, tx.Reads(), requestID)
		if err != nil {
			return err
		}

		entity = snap.ToEntity()
		if err := entity.Approve(c.clock.Now()); err != nil {
			return errs.Mark(err, ErrAlreadyDecided)
		}

		// Lock before the re-read so concurrent approvals of overlapping
		// windows observe each other's committed writes.
		if err := tx.Locks().AcquireHallLocks(ctx, tx.DB(), entity.HallIDs()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		records, err := tx.Reads().OverlappingRecords(ctx, entity.HallIDs(), entity.Window())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		verdict := reservation.ResolveForApproval(records, entity.HallIDs(), entity.Window(), entity.Ref())
		if !verdict.Clear() {
			// The request stays pending for the admin to resolve manually.
			return newConflictError(verdict, true)
		}

		return c.writeDecision(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, TopicRequestApproved, requestPayload(entity, adminNote, ""))

	return c.resQueries.GetByID(ctx, requestID)
}

func (c *reservationCommandsImpl) Reject(ctx context.Context, requestID uuid.UUID, reason string) (*queries.RequestView, error) {
	var entity *reservation.Request

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.loadRequest(ctx, tx.Reads(), requestID)
		if err != nil {
			return err
		}

		entity = snap.ToEntity()
		if err := entity.Reject(reason, c.clock.Now()); err != nil {
			if errors.Is(err, reservation.ErrEmptyReason) {
				return errs.Mark(err, ErrValidation)
			}
			return errs.Mark(err, ErrAlreadyDecided)
		}

		return c.writeDecision(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	var storedReason string
	if r := entity.RejectionReason(); r != nil {
		storedReason = *r
	}
	c.publish(ctx, TopicRequestRejected, requestPayload(entity, nil, storedReason))

	return c.resQueries.GetByID(ctx, requestID)
}

// Delete removes a pending request and its hall associations atomically.
// Owner-only; decided requests are immutable history.
func (c *reservationCommandsImpl) Delete(ctx context.Context, requestID, byUserID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.loadRequest(ctx, tx.Reads(), requestID)
		if err != nil {
			return err
		}

		entity := snap.ToEntity()
		if err := entity.AuthorizeDeletion(byUserID); err != nil {
			switch {
			case errors.Is(err, reservation.ErrNotOwner):
				return errs.Mark(err, ErrForbidden)
			default:
				return errs.Mark(err, ErrInvalidState)
			}
		}

		if err := tx.Requests().Delete(ctx, tx.DB(), requestID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// writeDecision persists a pending→decided transition. The repository only
// updates rows still pending, so a decision that lost a race with a concurrent
// one surfaces here instead of overwriting it.
func (c *reservationCommandsImpl) writeDecision(ctx context.Context, tx shared.Tx, entity *reservation.Request) error {
	if err := tx.Requests().UpdateStatus(ctx, tx.DB(), entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, ErrAlreadyDecided)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrRequestNotFound)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *reservationCommandsImpl) loadRequest(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.RequestSnapshot, error) {
	snap, err := reads.RequestByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRequestNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *reservationCommandsImpl) validateHalls(ctx context.Context, reads shared.CommandReads, hallIDs []uuid.UUID, attendees int) error {
	snaps, err := reads.HallsByIDs(ctx, hallIDs)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(snaps) != len(hallIDs) {
		return ErrHallNotFound
	}

	halls := make([]*hall.Hall, 0, len(snaps))
	for _, snap := range snaps {
		h, err := snap.ToEntity()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !h.Active() {
			return ErrHallInactive
		}
		halls = append(halls, h)
	}
	if attendees > hall.CombinedCapacity(halls) {
		return errs.Mark(reservation.ErrAttendeesOverCap, ErrValidation)
	}
	return nil
}

// publish is fire-and-forget: a failed delivery never fails the transition.
func (c *reservationCommandsImpl) publish(ctx context.Context, topic string, payload RequestEventPayload) {
	if err := c.publisher.Publish(ctx, topic, payload); err != nil {
		slog.Warn("failed to publish lifecycle event", "topic", topic, "request_id", payload.RequestID, "error", err.Error())
	}
}

func requestPayload(r *reservation.Request, adminNote *string, reason string) RequestEventPayload {
	w := r.Window()
	return RequestEventPayload{
		RequestID:     r.ID(),
		RequesterID:   r.RequesterID(),
		RequesterRole: r.RequesterRole().String(),
		HallIDs:       r.HallIDs(),
		StartDate:     w.StartDate().Format("2006-01-02"),
		EndDate:       w.EndDate().Format("2006-01-02"),
		StartTime:     reservation.FormatMinute(w.StartMinute()),
		EndTime:       reservation.FormatMinute(w.EndMinute()),
		Purpose:       r.Purpose(),
		AttendeeCount: r.AttendeeCount(),
		AdminNote:     adminNote,
		Reason:        reason,
	}
}
