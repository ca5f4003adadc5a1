//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/reservation"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDay(t *testing.T) {
	hallA := uuid.New()
	hallB := uuid.New()
	date := builder.MustDate("2026-09-10")
	window := builder.MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00")

	t.Run("no records means available", func(t *testing.T) {
		out := reservation.ProjectDay(nil, []uuid.UUID{hallA}, date)
		assert.Equal(t, reservation.HallAvailable, out[hallA].Status)
		assert.Nil(t, out[hallA].Detail)
	})

	t.Run("pending request marks pending", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusPending).
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		out := reservation.ProjectDay(records, []uuid.UUID{hallA, hallB}, date)
		assert.Equal(t, reservation.HallPending, out[hallA].Status)
		assert.Equal(t, reservation.HallAvailable, out[hallB].Status)
	})

	t.Run("approved request beats pending", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().WithStatus(reservation.StatusPending).WithHalls(hallA).WithWindow(window).Build(),
			builder.NewRecordBuilder().WithStatus(reservation.StatusApproved).WithHalls(hallA).WithWindow(window).Build(),
		}

		out := reservation.ProjectDay(records, []uuid.UUID{hallA}, date)
		require.Equal(t, reservation.HallBooked, out[hallA].Status)
		assert.Equal(t, reservation.KindRequest, out[hallA].Detail.Ref.Kind)
	})

	t.Run("direct booking beats approved request", func(t *testing.T) {
		direct := builder.NewRecordBuilder().
			AsDirect().
			WithHalls(hallA).
			WithWindow(window).
			WithCreatedAt(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)).
			Build()
		approved := builder.NewRecordBuilder().
			WithStatus(reservation.StatusApproved).
			WithHalls(hallA).
			WithWindow(window).
			WithCreatedAt(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)).
			Build()

		// The direct booking is older yet still wins the tier.
		out := reservation.ProjectDay([]reservation.Record{approved, direct}, []uuid.UUID{hallA}, date)
		require.Equal(t, reservation.HallBooked, out[hallA].Status)
		assert.Equal(t, reservation.KindDirect, out[hallA].Detail.Ref.Kind)
	})

	t.Run("blackout surfaces in the detail", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				AsBlackout().
				WithHalls(hallA).
				WithWindow(window).
				WithLabel("Annual maintenance").
				Build(),
		}

		out := reservation.ProjectDay(records, []uuid.UUID{hallA}, date)
		require.NotNil(t, out[hallA].Detail)
		assert.True(t, out[hallA].Detail.IsBlackout)
		assert.Equal(t, "Annual maintenance", out[hallA].Detail.Label)
	})

	t.Run("most recently created record wins the tie within a tier", func(t *testing.T) {
		older := builder.NewRecordBuilder().
			WithStatus(reservation.StatusPending).
			WithHalls(hallA).
			WithWindow(window).
			WithLabel("older").
			WithCreatedAt(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)).
			Build()
		newer := builder.NewRecordBuilder().
			WithStatus(reservation.StatusPending).
			WithHalls(hallA).
			WithWindow(window).
			WithLabel("newer").
			WithCreatedAt(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)).
			Build()

		out := reservation.ProjectDay([]reservation.Record{older, newer}, []uuid.UUID{hallA}, date)
		require.NotNil(t, out[hallA].Detail)
		assert.Equal(t, "newer", out[hallA].Detail.Label)
	})

	t.Run("record outside the date contributes nothing", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				AsDirect().
				WithHalls(hallA).
				WithWindow(builder.MustWindow("2026-09-11", "2026-09-12", "09:00", "11:00")).
				Build(),
		}

		out := reservation.ProjectDay(records, []uuid.UUID{hallA}, date)
		assert.Equal(t, reservation.HallAvailable, out[hallA].Status)
	})
}

func TestProjectRange(t *testing.T) {
	hallA := uuid.New()
	hallB := uuid.New()

	t.Run("worst status wins across the span", func(t *testing.T) {
		records := []reservation.Record{
			// Day one: pending on hall A.
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusPending).
				WithHalls(hallA).
				WithWindow(builder.MustWindow("2026-09-08", "2026-09-08", "09:00", "11:00")).
				Build(),
			// Day two: booked on hall A.
			builder.NewRecordBuilder().
				AsDirect().
				WithHalls(hallA).
				WithWindow(builder.MustWindow("2026-09-09", "2026-09-09", "09:00", "11:00")).
				Build(),
		}

		out := reservation.ProjectRange(records, []uuid.UUID{hallA, hallB},
			builder.MustDate("2026-09-08"), builder.MustDate("2026-09-10"))

		assert.Equal(t, reservation.HallBooked, out[hallA])
		assert.Equal(t, reservation.HallAvailable, out[hallB])
	})

	t.Run("pending on a single day marks the whole span pending", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusPending).
				WithHalls(hallA).
				WithWindow(builder.MustWindow("2026-09-09", "2026-09-09", "09:00", "11:00")).
				Build(),
		}

		out := reservation.ProjectRange(records, []uuid.UUID{hallA},
			builder.MustDate("2026-09-08"), builder.MustDate("2026-09-10"))

		assert.Equal(t, reservation.HallPending, out[hallA])
	})
}

func TestHallStatusWorse(t *testing.T) {
	assert.Equal(t, reservation.HallBooked, reservation.HallAvailable.Worse(reservation.HallBooked))
	assert.Equal(t, reservation.HallBooked, reservation.HallBooked.Worse(reservation.HallPending))
	assert.Equal(t, reservation.HallPending, reservation.HallAvailable.Worse(reservation.HallPending))
	assert.Equal(t, reservation.HallAvailable, reservation.HallAvailable.Worse(reservation.HallAvailable))
}
