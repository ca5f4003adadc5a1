package request

import (
	"hall-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	HallIDs       []uuid.UUID `json:"hall_ids" binding:"required,min=1"`
	StartDate     string      `json:"start_date" binding:"required"`
	EndDate       string      `json:"end_date" binding:"required"`
	StartTime     string      `json:"start_time" binding:"required"`
	EndTime       string      `json:"end_time" binding:"required"`
	Purpose       string      `json:"purpose" binding:"required"`
	AttendeeCount int         `json:"attendee_count" binding:"required,gt=0"`
}

// Window parses the date and time-of-day fields into the domain window.
// "24:00" is a valid exclusive end bound.
func (r CreateReservationRequest) Window() (reservation.TimeWindow, error) {
	return parseWindow(r.StartDate, r.EndDate, r.StartTime, r.EndTime)
}

type ApproveReservationRequest struct {
	AdminNote *string `json:"admin_note,omitempty"`
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func parseWindow(startDate, endDate, startTime, endTime string) (reservation.TimeWindow, error) {
	sd, err := reservation.ParseDate(startDate)
	if err != nil {
		return reservation.TimeWindow{}, err
	}
	ed, err := reservation.ParseDate(endDate)
	if err != nil {
		return reservation.TimeWindow{}, err
	}
	sm, err := reservation.ParseMinute(startTime)
	if err != nil {
		return reservation.TimeWindow{}, err
	}
	em, err := reservation.ParseMinute(endTime)
	if err != nil {
		return reservation.TimeWindow{}, err
	}
	return reservation.NewTimeWindow(sd, ed, sm, em)
}
