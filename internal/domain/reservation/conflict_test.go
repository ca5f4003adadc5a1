//go:build unit

package reservation_test

import (
	"math/rand"
	"testing"
	"time"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/domain/user"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	hallA := uuid.New()
	hallB := uuid.New()
	window := builder.MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00")

	t.Run("no records is clear for every role", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleFaculty, user.RoleClub, user.RoleAdmin} {
			v := reservation.Resolve(nil, []uuid.UUID{hallA}, window, role)
			assert.True(t, v.Clear(), "role %s", role)
		}
	})

	t.Run("pending request blocks club but not faculty", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusPending).
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		faculty := reservation.Resolve(records, []uuid.UUID{hallA}, window, user.RoleFaculty)
		assert.True(t, faculty.Clear())

		club := reservation.Resolve(records, []uuid.UUID{hallA}, window, user.RoleClub)
		require.False(t, club.Clear())
		assert.Equal(t, []uuid.UUID{hallA}, club.BlockingHalls)
		assert.Len(t, club.BlockingRecords, 1)
	})

	t.Run("approved request blocks faculty and club", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusApproved).
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		for _, role := range []user.Role{user.RoleFaculty, user.RoleClub} {
			v := reservation.Resolve(records, []uuid.UUID{hallA}, window, role)
			assert.False(t, v.Clear(), "role %s", role)
		}
	})

	t.Run("direct booking blocks faculty and club", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				AsDirect().
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		for _, role := range []user.Role{user.RoleFaculty, user.RoleClub} {
			v := reservation.Resolve(records, []uuid.UUID{hallA}, window, role)
			assert.False(t, v.Clear(), "role %s", role)
		}
	})

	t.Run("admin is never blocked", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().AsDirect().WithHalls(hallA).WithWindow(window).Build(),
			builder.NewRecordBuilder().WithStatus(reservation.StatusApproved).WithHalls(hallA).WithWindow(window).Build(),
			builder.NewRecordBuilder().WithStatus(reservation.StatusPending).WithHalls(hallA).WithWindow(window).Build(),
		}

		v := reservation.Resolve(records, []uuid.UUID{hallA}, window, user.RoleAdmin)
		assert.True(t, v.Clear())
	})

	t.Run("rejected request never blocks", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusRejected).
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		v := reservation.Resolve(records, []uuid.UUID{hallA}, window, user.RoleClub)
		assert.True(t, v.Clear())
	})

	t.Run("non overlapping window never blocks", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				AsDirect().
				WithHalls(hallA).
				WithWindow(builder.MustWindow("2026-09-10", "2026-09-10", "13:00", "15:00")).
				Build(),
		}

		v := reservation.Resolve(records, []uuid.UUID{hallA}, window, user.RoleClub)
		assert.True(t, v.Clear())
	})

	t.Run("disjoint hall sets never block", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				AsDirect().
				WithHalls(hallB).
				WithWindow(window).
				Build(),
		}

		v := reservation.Resolve(records, []uuid.UUID{hallA}, window, user.RoleClub)
		assert.True(t, v.Clear())
	})

	t.Run("only intersecting halls are reported blocked", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				AsDirect().
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		v := reservation.Resolve(records, []uuid.UUID{hallA, hallB}, window, user.RoleFaculty)
		require.False(t, v.Clear())
		assert.Equal(t, []uuid.UUID{hallA}, v.BlockingHalls)
	})

	t.Run("blocking halls are deduplicated and sorted", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().AsDirect().WithHalls(hallA, hallB).WithWindow(window).Build(),
			builder.NewRecordBuilder().WithStatus(reservation.StatusApproved).WithHalls(hallA).WithWindow(window).Build(),
		}

		v := reservation.Resolve(records, []uuid.UUID{hallA, hallB}, window, user.RoleClub)
		require.False(t, v.Clear())
		assert.Len(t, v.BlockingHalls, 2)
		assert.Len(t, v.BlockingRecords, 2)
		assert.True(t, v.BlockingHalls[0].String() < v.BlockingHalls[1].String())
	})
}

// TestResolveRandomized checks the resolver against an independent per-hall
// oracle over generated window sets: the blocking set must contain exactly the
// candidate halls touched by an overlapping record that blocks the role.
func TestResolveRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(20260910))
	hallPool := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	randomWindow := func() reservation.TimeWindow {
		base := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		start := base.AddDate(0, 0, rng.Intn(5))
		end := start.AddDate(0, 0, rng.Intn(3))
		startMin := rng.Intn(47) * 30
		endMin := startMin + (1+rng.Intn(6))*30
		if endMin > 24*60 {
			endMin = 24 * 60
		}
		w, err := reservation.NewTimeWindow(start, end, startMin, endMin)
		require.NoError(t, err)
		return w
	}

	randomHalls := func() []uuid.UUID {
		n := 1 + rng.Intn(len(hallPool))
		perm := rng.Perm(len(hallPool))
		halls := make([]uuid.UUID, 0, n)
		for _, i := range perm[:n] {
			halls = append(halls, hallPool[i])
		}
		return halls
	}

	randomRecord := func() reservation.Record {
		b := builder.NewRecordBuilder().WithHalls(randomHalls()...).WithWindow(randomWindow())
		switch rng.Intn(4) {
		case 0:
			b.AsDirect()
		case 1:
			b.WithStatus(reservation.StatusApproved)
		case 2:
			b.WithStatus(reservation.StatusPending)
		default:
			b.WithStatus(reservation.StatusRejected)
		}
		return b.Build()
	}

	contains := func(ids []uuid.UUID, id uuid.UUID) bool {
		for _, candidate := range ids {
			if candidate == id {
				return true
			}
		}
		return false
	}

	blocksRole := func(rec reservation.Record, role user.Role) bool {
		if rec.Authoritative() {
			return true
		}
		return rec.PendingRequest() && role != user.RoleFaculty
	}

	for i := 0; i < 500; i++ {
		records := make([]reservation.Record, rng.Intn(7))
		for j := range records {
			records[j] = randomRecord()
		}
		candidateHalls := randomHalls()
		window := randomWindow()
		role := []user.Role{user.RoleFaculty, user.RoleClub}[rng.Intn(2)]

		verdict := reservation.Resolve(records, candidateHalls, window, role)

		blocked := map[uuid.UUID]bool{}
		for _, rec := range records {
			if !window.Overlaps(rec.Window) || !blocksRole(rec, role) {
				continue
			}
			for _, hallID := range candidateHalls {
				if contains(rec.HallIDs, hallID) {
					blocked[hallID] = true
				}
			}
		}
		want := make([]uuid.UUID, 0, len(blocked))
		for id := range blocked {
			want = append(want, id)
		}

		require.ElementsMatch(t, want, verdict.BlockingHalls,
			"case %d: role=%s window=%s records=%d", i, role, window, len(records))
		require.Equal(t, len(want) == 0, verdict.Clear(), "case %d", i)
	}
}

// A clear approval verdict must never coexist with an overlapping
// authoritative record on a shared hall.
func TestResolveForApprovalRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hallPool := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	base := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	randomWindow := func() reservation.TimeWindow {
		startMin := rng.Intn(40) * 30
		w, err := reservation.NewTimeWindow(
			base.AddDate(0, 0, rng.Intn(3)), base.AddDate(0, 0, 2+rng.Intn(3)),
			startMin, startMin+30+rng.Intn(120),
		)
		require.NoError(t, err)
		return w
	}

	for i := 0; i < 300; i++ {
		self := reservation.RecordRef{Kind: reservation.KindRequest, ID: uuid.New()}
		candidateHalls := []uuid.UUID{hallPool[rng.Intn(len(hallPool))]}
		window := randomWindow()

		records := make([]reservation.Record, 0, 5)
		for j := 0; j < rng.Intn(5); j++ {
			b := builder.NewRecordBuilder().
				WithHalls(hallPool[rng.Intn(len(hallPool))]).
				WithWindow(randomWindow())
			if rng.Intn(2) == 0 {
				b.AsDirect()
			} else {
				b.WithStatus(reservation.StatusApproved)
			}
			records = append(records, b.Build())
		}

		verdict := reservation.ResolveForApproval(records, candidateHalls, window, self)
		if !verdict.Clear() {
			continue
		}
		for _, rec := range records {
			if rec.Ref == self || !rec.Authoritative() {
				continue
			}
			violates := window.Overlaps(rec.Window) && rec.HallIDs[0] == candidateHalls[0]
			require.False(t, violates,
				"case %d: clear verdict despite authoritative overlap on %s (window %s vs %s)",
				i, rec.HallIDs[0], window, rec.Window)
		}
	}
}

func TestResolveForApproval(t *testing.T) {
	hallA := uuid.New()
	window := builder.MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00")
	self := reservation.RecordRef{Kind: reservation.KindRequest, ID: uuid.New()}

	t.Run("request does not block its own approval", func(t *testing.T) {
		records := []reservation.Record{
			{
				Ref:     self,
				HallIDs: []uuid.UUID{hallA},
				Window:  window,
				Status:  reservation.StatusPending,
			},
		}

		v := reservation.ResolveForApproval(records, []uuid.UUID{hallA}, window, self)
		assert.True(t, v.Clear())
	})

	t.Run("other approved request blocks approval", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusApproved).
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		v := reservation.ResolveForApproval(records, []uuid.UUID{hallA}, window, self)
		assert.False(t, v.Clear())
	})

	t.Run("direct booking blocks approval", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				AsDirect().
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		v := reservation.ResolveForApproval(records, []uuid.UUID{hallA}, window, self)
		assert.False(t, v.Clear())
	})

	t.Run("other pending requests do not block approval", func(t *testing.T) {
		records := []reservation.Record{
			builder.NewRecordBuilder().
				WithStatus(reservation.StatusPending).
				WithHalls(hallA).
				WithWindow(window).
				Build(),
		}

		v := reservation.ResolveForApproval(records, []uuid.UUID{hallA}, window, self)
		assert.True(t, v.Clear())
	})
}
