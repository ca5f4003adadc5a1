//go:build unit || e2e

package builder

import (
	"time"

	"hall-booking/internal/domain/reservation"
	"hall-booking/internal/domain/user"
	reqdto "hall-booking/internal/handler/dto/request"
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// MustWindow builds a TimeWindow from date and "HH:MM" strings, panicking on
// bad literals so table tests stay terse.
func MustWindow(startDate, endDate, startTime, endTime string) reservation.TimeWindow {
	sd, err := reservation.ParseDate(startDate)
	if err != nil {
		panic(err)
	}
	ed, err := reservation.ParseDate(endDate)
	if err != nil {
		panic(err)
	}
	sm, err := reservation.ParseMinute(startTime)
	if err != nil {
		panic(err)
	}
	em, err := reservation.ParseMinute(endTime)
	if err != nil {
		panic(err)
	}
	w, err := reservation.NewTimeWindow(sd, ed, sm, em)
	if err != nil {
		panic(err)
	}
	return w
}

func MustDate(s string) time.Time {
	d, err := reservation.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

type RequestBuilder struct {
	requesterID   uuid.UUID
	role          user.Role
	hallIDs       []uuid.UUID
	window        reservation.TimeWindow
	purpose       string
	attendeeCount int
	now           time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		requesterID:   uuid.New(),
		role:          user.RoleFaculty,
		hallIDs:       []uuid.UUID{uuid.New()},
		window:        MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00"),
		purpose:       "Department seminar",
		attendeeCount: 30,
		now:           time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) WithRequester(id uuid.UUID) *RequestBuilder {
	b.requesterID = id
	return b
}

func (b *RequestBuilder) WithRole(role user.Role) *RequestBuilder {
	b.role = role
	return b
}

func (b *RequestBuilder) WithHalls(ids ...uuid.UUID) *RequestBuilder {
	b.hallIDs = ids
	return b
}

func (b *RequestBuilder) WithWindow(w reservation.TimeWindow) *RequestBuilder {
	b.window = w
	return b
}

func (b *RequestBuilder) WithPurpose(p string) *RequestBuilder {
	b.purpose = p
	return b
}

func (b *RequestBuilder) WithAttendees(n int) *RequestBuilder {
	b.attendeeCount = n
	return b
}

func (b *RequestBuilder) WithCreatedAt(t time.Time) *RequestBuilder {
	b.now = t
	return b
}

func (b *RequestBuilder) BuildDomain() (*reservation.Request, error) {
	return reservation.NewRequest(
		b.requesterID, b.role, b.hallIDs, b.window, b.purpose, b.attendeeCount, b.now,
	)
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		HallIDs:       b.hallIDs,
		StartDate:     b.window.StartDate().Format("2006-01-02"),
		EndDate:       b.window.EndDate().Format("2006-01-02"),
		StartTime:     reservation.FormatMinute(b.window.StartMinute()),
		EndTime:       reservation.FormatMinute(b.window.EndMinute()),
		Purpose:       b.purpose,
		AttendeeCount: b.attendeeCount,
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	halls := make([]queries.HallRefView, len(b.hallIDs))
	for i, id := range b.hallIDs {
		halls[i] = queries.HallRefView{ID: id, Name: "Main Hall"}
	}
	return &queries.RequestView{
		ID:            uuid.New(),
		RequesterID:   b.requesterID,
		RequesterRole: b.role.String(),
		Halls:         halls,
		StartDate:     b.window.StartDate().Format("2006-01-02"),
		EndDate:       b.window.EndDate().Format("2006-01-02"),
		StartTime:     reservation.FormatMinute(b.window.StartMinute()),
		EndTime:       reservation.FormatMinute(b.window.EndMinute()),
		Status:        string(reservation.StatusPending),
		Purpose:       b.purpose,
		AttendeeCount: b.attendeeCount,
		CreatedAt:     b.now,
		UpdatedAt:     b.now,
	}
}

type RecordBuilder struct {
	ref        reservation.RecordRef
	hallIDs    []uuid.UUID
	window     reservation.TimeWindow
	status     reservation.Status
	isBlackout bool
	label      string
	createdAt  time.Time
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ref:       reservation.RecordRef{Kind: reservation.KindRequest, ID: uuid.New()},
		hallIDs:   []uuid.UUID{uuid.New()},
		window:    MustWindow("2026-09-10", "2026-09-10", "09:00", "11:00"),
		status:    reservation.StatusPending,
		label:     "Existing allocation",
		createdAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RecordBuilder) AsDirect() *RecordBuilder {
	b.ref.Kind = reservation.KindDirect
	b.status = ""
	return b
}

func (b *RecordBuilder) AsBlackout() *RecordBuilder {
	b.AsDirect()
	b.isBlackout = true
	return b
}

func (b *RecordBuilder) WithStatus(s reservation.Status) *RecordBuilder {
	b.status = s
	return b
}

func (b *RecordBuilder) WithHalls(ids ...uuid.UUID) *RecordBuilder {
	b.hallIDs = ids
	return b
}

func (b *RecordBuilder) WithWindow(w reservation.TimeWindow) *RecordBuilder {
	b.window = w
	return b
}

func (b *RecordBuilder) WithLabel(l string) *RecordBuilder {
	b.label = l
	return b
}

func (b *RecordBuilder) WithCreatedAt(t time.Time) *RecordBuilder {
	b.createdAt = t
	return b
}

func (b *RecordBuilder) Build() reservation.Record {
	return reservation.Record{
		Ref:        b.ref,
		HallIDs:    b.hallIDs,
		Window:     b.window,
		Status:     b.status,
		IsBlackout: b.isBlackout,
		Label:      b.label,
		CreatedAt:  b.createdAt,
	}
}
