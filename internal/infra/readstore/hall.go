package readstore

import (
	"context"

	"hall-booking/internal/infra"
	"hall-booking/internal/infra/sqldb"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type HallReadStore struct {
	db sqldb.DBTX
}

func NewHallReadStore(db sqldb.DBTX) *HallReadStore {
	return &HallReadStore{db: db}
}

func (s *HallReadStore) ListActive(ctx context.Context) ([]*queries.HallView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, capacity, is_active
		FROM halls
		WHERE is_active
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active halls", err)
	}
	defer rows.Close()

	return scanHallViews(rows)
}

func (s *HallReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.HallView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, capacity, is_active
		FROM halls
		WHERE id = ANY($1)
		ORDER BY name`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find halls by ids", err)
	}
	defer rows.Close()

	return scanHallViews(rows)
}

// SnapshotsByIDs backs the write side's hall validation reads.
func (s *HallReadStore) SnapshotsByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.HallSnapshot, error) {
	views, err := s.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	snaps := make([]shared.HallSnapshot, len(views))
	for i, v := range views {
		snaps[i] = shared.HallSnapshot{
			ID:       v.ID,
			Name:     v.Name,
			Capacity: v.Capacity,
			Active:   v.Active,
		}
	}
	return snaps, nil
}

func scanHallViews(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*queries.HallView, error) {
	var out []*queries.HallView
	for rows.Next() {
		var v queries.HallView
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hall row", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hall rows", err)
	}
	return out, nil
}
