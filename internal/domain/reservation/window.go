package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

const minutesPerDay = 24 * 60

// TimeWindow is a closed date range plus a half-open [start, end) time-of-day
// range. Windows do not cross midnight; a multi-day window occupies the same
// time-of-day band on every day it covers.
type TimeWindow struct {
	startDate time.Time // midnight UTC
	endDate   time.Time // midnight UTC
	startMin  int       // minutes since midnight
	endMin    int
}

func NewTimeWindow(startDate, endDate time.Time, startMin, endMin int) (TimeWindow, error) {
	startDate = truncateToDate(startDate)
	endDate = truncateToDate(endDate)

	if startDate.After(endDate) {
		return TimeWindow{}, ErrInvalidDateRange
	}
	if startMin < 0 || endMin > minutesPerDay || startMin >= endMin {
		return TimeWindow{}, ErrInvalidTimeRange
	}

	return TimeWindow{
		startDate: startDate,
		endDate:   endDate,
		startMin:  startMin,
		endMin:    endMin,
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (w TimeWindow) StartDate() time.Time { return w.startDate }
func (w TimeWindow) EndDate() time.Time   { return w.endDate }
func (w TimeWindow) StartMinute() int     { return w.startMin }
func (w TimeWindow) EndMinute() int       { return w.endMin }

// Overlaps is the single conflict primitive: date ranges intersect (closed)
// and time-of-day ranges intersect (half-open). Every conflict check in the
// engine goes through here.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	datesOverlap := !w.startDate.After(other.endDate) && !other.startDate.After(w.endDate)
	timesOverlap := w.startMin < other.endMin && other.startMin < w.endMin
	return datesOverlap && timesOverlap
}

// CoversDate reports whether the window's date range includes the given day.
func (w TimeWindow) CoversDate(date time.Time) bool {
	d := truncateToDate(date)
	return !w.startDate.After(d) && !d.After(w.endDate)
}

// EachDate calls fn for every date in the window's range, in order.
func (w TimeWindow) EachDate(fn func(date time.Time)) {
	for d := w.startDate; !d.After(w.endDate); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s..%s %s-%s",
		w.startDate.Format("2006-01-02"),
		w.endDate.Format("2006-01-02"),
		FormatMinute(w.startMin),
		FormatMinute(w.endMin),
	)
}

func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseMinute parses an "HH:MM" time-of-day into minutes since midnight.
// "24:00" is accepted as the exclusive end-of-day bound.
func ParseMinute(s string) (int, error) {
	if s == "24:00" {
		return minutesPerDay, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeRange
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDate parses a "YYYY-MM-DD" date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateRange
	}
	return t, nil
}
