package queries

import (
	"context"
)

type HallQueries interface {
	ListActive(ctx context.Context) ([]*HallView, error)
}

type hallQueriesImpl struct {
	store HallReadStore
}

func NewHallQueries(store HallReadStore) HallQueries {
	return &hallQueriesImpl{store: store}
}

func (q *hallQueriesImpl) ListActive(ctx context.Context) ([]*HallView, error) {
	return q.store.ListActive(ctx)
}
