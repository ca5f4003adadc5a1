package repository

import (
	"context"
	"sort"

	"hall-booking/internal/infra"
	"hall-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

type HallLocker struct{}

func NewHallLocker() *HallLocker {
	return &HallLocker{}
}

// AcquireHallLocks takes transaction-scoped advisory locks, one per hall, in
// sorted order. Approve and direct-booking creation both lock through here,
// so check-then-set sequences touching the same hall serialize.
func (l *HallLocker) AcquireHallLocks(ctx context.Context, db sqldb.DBTX, hallIDs []uuid.UUID) error {
	sorted := make([]uuid.UUID, len(hallIDs))
	copy(sorted, hallIDs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })

	for _, hallID := range sorted {
		if _, err := db.Exec(ctx,
			`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
			hallID.String(),
		); err != nil {
			return infra.WrapRepoErr("failed to acquire hall lock", err)
		}
	}
	return nil
}
