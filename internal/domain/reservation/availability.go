package reservation

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// HallStatus is a merged per-hall availability status. Ordering matters:
// Booked dominates Pending dominates Available ("worst wins").
type HallStatus string

const (
	HallAvailable HallStatus = "available"
	HallPending   HallStatus = "pending"
	HallBooked    HallStatus = "booked"
)

func (s HallStatus) rank() int {
	switch s {
	case HallBooked:
		return 2
	case HallPending:
		return 1
	default:
		return 0
	}
}

// Worse returns the dominating status of the two.
func (s HallStatus) Worse(other HallStatus) HallStatus {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// BookingSummary is the single detail record surfaced for a hall/day.
type BookingSummary struct {
	Ref        RecordRef
	Window     TimeWindow
	IsBlackout bool
	Label      string
}

type DayEntry struct {
	Status HallStatus
	Detail *BookingSummary
}

// ProjectDay computes per-hall status for a single day. Precedence per hall:
// direct booking -> Booked, else approved request -> Booked, else pending
// request -> Pending, else Available. Within a tier the most recently created
// record supplies the detail.
func ProjectDay(records []Record, hallIDs []uuid.UUID, date time.Time) map[uuid.UUID]DayEntry {
	// Newest first so the first match in a tier wins the tie-break.
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	out := make(map[uuid.UUID]DayEntry, len(hallIDs))
	for _, hallID := range hallIDs {
		out[hallID] = projectHallDay(sorted, hallID, date)
	}
	return out
}

func projectHallDay(sorted []Record, hallID uuid.UUID, date time.Time) DayEntry {
	var approved, pending *Record

	for i := range sorted {
		rec := &sorted[i]
		if !rec.Window.CoversDate(date) || !rec.touchesHall(hallID) {
			continue
		}
		switch {
		case rec.Ref.Kind == KindDirect:
			return DayEntry{Status: HallBooked, Detail: rec.summary()}
		case rec.Status == StatusApproved && approved == nil:
			approved = rec
		case rec.PendingRequest() && pending == nil:
			pending = rec
		}
	}

	if approved != nil {
		return DayEntry{Status: HallBooked, Detail: approved.summary()}
	}
	if pending != nil {
		return DayEntry{Status: HallPending, Detail: pending.summary()}
	}
	return DayEntry{Status: HallAvailable}
}

// ProjectRange folds ProjectDay across every date in [startDate, endDate]
// with a worst-wins merge. Multi-day booking forms use it to decide which
// halls may even be offered across the whole span.
func ProjectRange(records []Record, hallIDs []uuid.UUID, startDate, endDate time.Time) map[uuid.UUID]HallStatus {
	out := make(map[uuid.UUID]HallStatus, len(hallIDs))
	for _, hallID := range hallIDs {
		out[hallID] = HallAvailable
	}

	span, err := NewTimeWindow(startDate, endDate, 0, minutesPerDay)
	if err != nil {
		return out
	}

	span.EachDate(func(date time.Time) {
		day := ProjectDay(records, hallIDs, date)
		for hallID, entry := range day {
			out[hallID] = out[hallID].Worse(entry.Status)
		}
	})
	return out
}

func (r *Record) touchesHall(hallID uuid.UUID) bool {
	for _, id := range r.HallIDs {
		if id == hallID {
			return true
		}
	}
	return false
}

func (r *Record) summary() *BookingSummary {
	return &BookingSummary{
		Ref:        r.Ref,
		Window:     r.Window,
		IsBlackout: r.IsBlackout,
		Label:      r.Label,
	}
}
