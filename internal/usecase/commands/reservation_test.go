//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/domain/user"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/shared"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandsFixture struct {
	store     *fakeStore
	publisher *fakePublisher
	clock     *clock.FakeClock
	commands  commands.ReservationCommands
}

func newCommandsFixture() *commandsFixture {
	store := newFakeStore()
	publisher := &fakePublisher{}
	fc := clock.NewFakeClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return &commandsFixture{
		store:     store,
		publisher: publisher,
		clock:     fc,
		commands: commands.NewReservationCommands(
			&fakeUow{store: store}, &fakeQueries{store: store}, publisher, fc,
		),
	}
}

func (f *commandsFixture) seedPendingRequest(hallIDs ...uuid.UUID) *shared.RequestSnapshot {
	req, err := builder.NewRequestBuilder().WithHalls(hallIDs...).BuildDomain()
	if err != nil {
		panic(err)
	}
	for _, id := range hallIDs {
		if _, ok := f.store.halls[id]; !ok {
			f.store.addHall(id, 100, true)
		}
	}
	snap := snapshotOf(req)
	f.store.addRequest(snap)
	return snap
}

func createParams(hallIDs []uuid.UUID, role user.Role) commands.CreateRequestParams {
	return commands.CreateRequestParams{
		RequesterID:   uuid.New(),
		Role:          role,
		HallIDs:       hallIDs,
		Window:        builder.MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00"),
		Purpose:       "Department seminar",
		AttendeeCount: 30,
	}
}

func TestReservationCommands_Create(t *testing.T) {
	hallID := uuid.New()

	t.Run("clear window creates a pending request", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.addHall(hallID, 100, true)

		view, err := f.commands.Create(context.Background(), createParams([]uuid.UUID{hallID}, user.RoleFaculty))
		require.NoError(t, err)
		assert.Equal(t, string(reservation.StatusPending), view.Status)
		assert.Len(t, f.store.requests, 1)

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, commands.TopicRequestCreated, f.publisher.events[0].topic)
	})

	t.Run("faculty is not blocked by a pending record", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.addHall(hallID, 100, true)
		f.store.records = []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusPending).
				WithHalls(hallID).
				WithWindow(builder.MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00")).
				Build(),
		}

		_, err := f.commands.Create(context.Background(), createParams([]uuid.UUID{hallID}, user.RoleFaculty))
		assert.NoError(t, err)
	})

	t.Run("club is blocked by a pending record", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.addHall(hallID, 100, true)
		f.store.records = []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusPending).
				WithHalls(hallID).
				WithWindow(builder.MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00")).
				Build(),
		}

		_, err := f.commands.Create(context.Background(), createParams([]uuid.UUID{hallID}, user.RoleClub))
		var conflict *commands.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.False(t, conflict.Stale)
		assert.Equal(t, []uuid.UUID{hallID}, conflict.BlockingHalls)
		assert.Len(t, conflict.BlockingRecords, 1)

		assert.Empty(t, f.store.requests, "nothing persisted on conflict")
		assert.Empty(t, f.publisher.events, "no event on conflict")
	})

	t.Run("unknown hall", func(t *testing.T) {
		f := newCommandsFixture()

		_, err := f.commands.Create(context.Background(), createParams([]uuid.UUID{uuid.New()}, user.RoleFaculty))
		assert.ErrorIs(t, err, commands.ErrHallNotFound)
	})

	t.Run("inactive hall", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.addHall(hallID, 100, false)

		_, err := f.commands.Create(context.Background(), createParams([]uuid.UUID{hallID}, user.RoleFaculty))
		assert.ErrorIs(t, err, commands.ErrHallInactive)
	})

	t.Run("attendees over combined capacity", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.addHall(hallID, 100, true)

		p := createParams([]uuid.UUID{hallID}, user.RoleFaculty)
		p.AttendeeCount = 101
		_, err := f.commands.Create(context.Background(), p)
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("entity validation failure is marked as validation", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.addHall(hallID, 100, true)

		p := createParams([]uuid.UUID{hallID}, user.RoleFaculty)
		p.Purpose = "   "
		_, err := f.commands.Create(context.Background(), p)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Empty(t, f.store.requests)
	})

	t.Run("publish failure does not fail the command", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.addHall(hallID, 100, true)
		f.publisher.err = errors.New("broker unavailable")

		_, err := f.commands.Create(context.Background(), createParams([]uuid.UUID{hallID}, user.RoleFaculty))
		assert.NoError(t, err)
		assert.Len(t, f.store.requests, 1)
	})
}

func TestReservationCommands_Approve(t *testing.T) {
	hallID := uuid.New()

	t.Run("clear approval commits under hall locks", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)

		note := "approved for the semester"
		view, err := f.commands.Approve(context.Background(), snap.ID, &note)
		require.NoError(t, err)
		assert.Equal(t, string(reservation.StatusApproved), view.Status)
		assert.Equal(t, reservation.StatusApproved, f.store.requests[snap.ID].Status)

		require.Len(t, f.store.lockCalls, 1)
		assert.ElementsMatch(t, []uuid.UUID{hallID}, f.store.lockCalls[0])

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, commands.TopicRequestApproved, f.publisher.events[0].topic)
		payload, ok := f.publisher.events[0].payload.(commands.RequestEventPayload)
		require.True(t, ok)
		require.NotNil(t, payload.AdminNote)
		assert.Equal(t, note, *payload.AdminNote)
	})

	t.Run("stale approval leaves the request pending", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		f.store.records = []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusApproved).
				WithHalls(hallID).
				WithWindow(snap.Window).
				Build(),
		}

		_, err := f.commands.Approve(context.Background(), snap.ID, nil)
		var conflict *commands.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.True(t, conflict.Stale)
		assert.Equal(t, []uuid.UUID{hallID}, conflict.BlockingHalls)

		assert.Equal(t, reservation.StatusPending, f.store.requests[snap.ID].Status)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("own record does not block approval", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		f.store.records = []reservation.Record{
			{
				Ref:     reservation.RecordRef{Kind: reservation.KindRequest, ID: snap.ID},
				HallIDs: snap.HallIDs,
				Window:  snap.Window,
				Status:  reservation.StatusPending,
			},
		}

		_, err := f.commands.Approve(context.Background(), snap.ID, nil)
		assert.NoError(t, err)
	})

	t.Run("already decided", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		snap.Status = reservation.StatusRejected
		reason := "superseded"
		snap.RejectionReason = &reason

		_, err := f.commands.Approve(context.Background(), snap.ID, nil)
		assert.ErrorIs(t, err, commands.ErrAlreadyDecided)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newCommandsFixture()

		_, err := f.commands.Approve(context.Background(), uuid.New(), nil)
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})
}

func TestReservationCommands_Reject(t *testing.T) {
	hallID := uuid.New()

	t.Run("reject with reason", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)

		view, err := f.commands.Reject(context.Background(), snap.ID, "  Hall closed for repairs  ")
		require.NoError(t, err)
		assert.Equal(t, string(reservation.StatusRejected), view.Status)
		require.NotNil(t, view.RejectionReason)
		assert.Equal(t, "Hall closed for repairs", *view.RejectionReason)

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, commands.TopicRequestRejected, f.publisher.events[0].topic)
		payload, ok := f.publisher.events[0].payload.(commands.RequestEventPayload)
		require.True(t, ok)
		assert.Equal(t, "Hall closed for repairs", payload.Reason)
	})

	t.Run("empty reason is a validation failure", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)

		_, err := f.commands.Reject(context.Background(), snap.ID, "   ")
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Equal(t, reservation.StatusPending, f.store.requests[snap.ID].Status)
	})

	t.Run("already decided", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		snap.Status = reservation.StatusApproved

		_, err := f.commands.Reject(context.Background(), snap.ID, "too late")
		assert.ErrorIs(t, err, commands.ErrAlreadyDecided)
	})
}

func TestReservationCommands_DecisionRace(t *testing.T) {
	hallID := uuid.New()

	t.Run("reject racing a committed approve does not overwrite it", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		// A concurrent approval commits between this command's read and write.
		f.store.afterLoadRequest = func() {
			f.store.requests[snap.ID].Status = reservation.StatusApproved
		}

		_, err := f.commands.Reject(context.Background(), snap.ID, "hall closed")
		assert.ErrorIs(t, err, commands.ErrAlreadyDecided)
		assert.Equal(t, reservation.StatusApproved, f.store.requests[snap.ID].Status,
			"the committed approval must survive")
		assert.Nil(t, f.store.requests[snap.ID].RejectionReason)
		assert.Empty(t, f.publisher.events, "the losing decision emits no event")
	})

	t.Run("second approve of an already approved request loses", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		f.store.afterLoadRequest = func() {
			f.store.requests[snap.ID].Status = reservation.StatusApproved
		}

		_, err := f.commands.Approve(context.Background(), snap.ID, nil)
		assert.ErrorIs(t, err, commands.ErrAlreadyDecided)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("approve racing a committed reject loses", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		reason := "superseded"
		f.store.afterLoadRequest = func() {
			f.store.requests[snap.ID].Status = reservation.StatusRejected
			f.store.requests[snap.ID].RejectionReason = &reason
		}

		_, err := f.commands.Approve(context.Background(), snap.ID, nil)
		assert.ErrorIs(t, err, commands.ErrAlreadyDecided)
		assert.Equal(t, reservation.StatusRejected, f.store.requests[snap.ID].Status)
		assert.Empty(t, f.publisher.events)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	hallID := uuid.New()

	t.Run("owner deletes a pending request", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)

		err := f.commands.Delete(context.Background(), snap.ID, snap.RequesterID)
		require.NoError(t, err)
		assert.NotContains(t, f.store.requests, snap.ID)
		assert.Equal(t, []uuid.UUID{snap.ID}, f.store.deletedReqs)
	})

	t.Run("non owner is forbidden", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)

		err := f.commands.Delete(context.Background(), snap.ID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrForbidden)
		assert.Contains(t, f.store.requests, snap.ID)
	})

	t.Run("decided request cannot be deleted", func(t *testing.T) {
		f := newCommandsFixture()
		snap := f.seedPendingRequest(hallID)
		snap.Status = reservation.StatusApproved

		err := f.commands.Delete(context.Background(), snap.ID, snap.RequesterID)
		assert.ErrorIs(t, err, commands.ErrInvalidState)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newCommandsFixture()

		err := f.commands.Delete(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})
}
