package queries

import (
	"context"
	"sort"
	"time"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRange = errs.New("invalid availability range")

// DayAvailabilityView is one hall's merged status for a single day.
type DayAvailabilityView struct {
	HallID   uuid.UUID      `json:"hall_id"`
	HallName string         `json:"hall_name"`
	Status   string         `json:"status"`
	Detail   *BookingDetail `json:"detail,omitempty"`
}

type RangeAvailabilityView struct {
	HallID   uuid.UUID `json:"hall_id"`
	HallName string    `json:"hall_name"`
	Status   string    `json:"status"`
}

type BookingDetail struct {
	Kind       string    `json:"kind"`
	RecordID   uuid.UUID `json:"record_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	IsBlackout bool      `json:"is_blackout,omitempty"`
	Label      string    `json:"label,omitempty"`
}

type AvailabilityQueries interface {
	// Day computes per-hall status for a single date. An empty hall filter
	// means every active hall.
	Day(ctx context.Context, hallIDs []uuid.UUID, date time.Time) ([]DayAvailabilityView, error)
	// Range folds Day across [startDate, endDate] with a worst-wins merge.
	Range(ctx context.Context, hallIDs []uuid.UUID, startDate, endDate time.Time) ([]RangeAvailabilityView, error)
}

type HallReadStore interface {
	ListActive(ctx context.Context) ([]*HallView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*HallView, error)
}

// RecordReadStore fetches conflict-relevant records for a hall set and date
// window. Results are read fresh per query; availability state is never
// cached across queries.
type RecordReadStore interface {
	OverlappingRecords(ctx context.Context, hallIDs []uuid.UUID, window reservation.TimeWindow) ([]reservation.Record, error)
}

type availabilityQueriesImpl struct {
	halls   HallReadStore
	records RecordReadStore
}

func NewAvailabilityQueries(halls HallReadStore, records RecordReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{halls: halls, records: records}
}

func (q *availabilityQueriesImpl) Day(ctx context.Context, hallIDs []uuid.UUID, date time.Time) ([]DayAvailabilityView, error) {
	halls, err := q.resolveHalls(ctx, hallIDs)
	if err != nil {
		return nil, err
	}

	window, err := reservation.NewTimeWindow(date, date, 0, 24*60)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	records, err := q.records.OverlappingRecords(ctx, idsOf(halls), window)
	if err != nil {
		return nil, err
	}

	projected := reservation.ProjectDay(records, idsOf(halls), date)

	views := make([]DayAvailabilityView, 0, len(halls))
	for _, h := range halls {
		entry := projected[h.ID]
		views = append(views, DayAvailabilityView{
			HallID:   h.ID,
			HallName: h.Name,
			Status:   string(entry.Status),
			Detail:   toDetail(entry.Detail),
		})
	}
	return views, nil
}

func (q *availabilityQueriesImpl) Range(ctx context.Context, hallIDs []uuid.UUID, startDate, endDate time.Time) ([]RangeAvailabilityView, error) {
	halls, err := q.resolveHalls(ctx, hallIDs)
	if err != nil {
		return nil, err
	}

	window, err := reservation.NewTimeWindow(startDate, endDate, 0, 24*60)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	records, err := q.records.OverlappingRecords(ctx, idsOf(halls), window)
	if err != nil {
		return nil, err
	}

	projected := reservation.ProjectRange(records, idsOf(halls), startDate, endDate)

	views := make([]RangeAvailabilityView, 0, len(halls))
	for _, h := range halls {
		views = append(views, RangeAvailabilityView{
			HallID:   h.ID,
			HallName: h.Name,
			Status:   string(projected[h.ID]),
		})
	}
	return views, nil
}

func (q *availabilityQueriesImpl) resolveHalls(ctx context.Context, hallIDs []uuid.UUID) ([]*HallView, error) {
	var halls []*HallView
	var err error
	if len(hallIDs) == 0 {
		halls, err = q.halls.ListActive(ctx)
	} else {
		halls, err = q.halls.FindByIDs(ctx, hallIDs)
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(halls, func(i, j int) bool { return halls[i].Name < halls[j].Name })
	return halls, nil
}

func idsOf(halls []*HallView) []uuid.UUID {
	ids := make([]uuid.UUID, len(halls))
	for i, h := range halls {
		ids[i] = h.ID
	}
	return ids
}

func toDetail(s *reservation.BookingSummary) *BookingDetail {
	if s == nil {
		return nil
	}
	return &BookingDetail{
		Kind:       s.Ref.Kind.String(),
		RecordID:   s.Ref.ID,
		StartDate:  s.Window.StartDate().Format("2006-01-02"),
		EndDate:    s.Window.EndDate().Format("2006-01-02"),
		StartTime:  reservation.FormatMinute(s.Window.StartMinute()),
		EndTime:    reservation.FormatMinute(s.Window.EndMinute()),
		IsBlackout: s.IsBlackout,
		Label:      s.Label,
	}
}
