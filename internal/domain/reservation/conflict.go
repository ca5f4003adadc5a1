package reservation

import (
	"sort"

	"hall-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Verdict is the conflict resolver's answer for a candidate window. A clear
// verdict has no blocking halls; a blocked one names the colliding halls and
// the records behind them so callers can report exactly what stood in the way.
type Verdict struct {
	BlockingHalls   []uuid.UUID
	BlockingRecords []RecordRef
}

func (v Verdict) Clear() bool {
	return len(v.BlockingHalls) == 0
}

// Resolve applies the role-asymmetric blocking policy for request creation:
//
//   - faculty: blocked by direct bookings and approved requests; pending
//     requests from any party do not block (a deliberate privilege).
//   - club (and any other non-admin role): additionally blocked by pending
//     requests.
//   - admin: never blocked; direct bookings are created unconditionally and
//     become blocking records for everyone else from then on.
//
// Records whose window does not overlap the candidate window, or whose halls
// do not intersect the candidate set, never block.
func Resolve(records []Record, candidateHalls []uuid.UUID, window TimeWindow, role user.Role) Verdict {
	if role == user.RoleAdmin {
		return Verdict{}
	}
	return resolve(records, candidateHalls, window, func(rec Record) bool {
		if rec.Authoritative() {
			return true
		}
		return rec.PendingRequest() && role != user.RoleFaculty
	})
}

// ResolveForApproval re-checks a pending request at approval time, the
// strictest policy: any other authoritative record blocks. Pending requests do
// not block approval; a lost pending-vs-pending race surfaces here because the
// winner is already approved by the time the loser is re-checked. The request
// being approved is excluded from its own check.
func ResolveForApproval(records []Record, candidateHalls []uuid.UUID, window TimeWindow, self RecordRef) Verdict {
	return resolve(records, candidateHalls, window, func(rec Record) bool {
		return rec.Ref != self && rec.Authoritative()
	})
}

func resolve(records []Record, candidateHalls []uuid.UUID, window TimeWindow, blocks func(Record) bool) Verdict {
	candidates := make(map[uuid.UUID]struct{}, len(candidateHalls))
	for _, id := range candidateHalls {
		candidates[id] = struct{}{}
	}

	blockedHalls := make(map[uuid.UUID]struct{})
	var blockingRecords []RecordRef
	seenRecords := make(map[RecordRef]struct{})

	for _, rec := range records {
		if !window.Overlaps(rec.Window) {
			continue
		}
		touched := rec.touchesAny(candidates)
		if len(touched) == 0 {
			continue
		}
		if !blocks(rec) {
			continue
		}
		for _, hallID := range touched {
			blockedHalls[hallID] = struct{}{}
		}
		if _, ok := seenRecords[rec.Ref]; !ok {
			seenRecords[rec.Ref] = struct{}{}
			blockingRecords = append(blockingRecords, rec.Ref)
		}
	}

	if len(blockedHalls) == 0 {
		return Verdict{}
	}

	halls := make([]uuid.UUID, 0, len(blockedHalls))
	for id := range blockedHalls {
		halls = append(halls, id)
	}
	sort.Slice(halls, func(i, j int) bool { return halls[i].String() < halls[j].String() })

	return Verdict{BlockingHalls: halls, BlockingRecords: blockingRecords}
}
