package request

import (
	"hall-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HallIDs    []uuid.UUID `json:"hall_ids" binding:"required,min=1"`
	StartDate  string      `json:"start_date" binding:"required"`
	EndDate    string      `json:"end_date" binding:"required"`
	StartTime  string      `json:"start_time" binding:"required"`
	EndTime    string      `json:"end_time" binding:"required"`
	IsBlackout bool        `json:"is_blackout"`
	Note       string      `json:"note,omitempty"`
}

func (r CreateBookingRequest) Window() (reservation.TimeWindow, error) {
	return parseWindow(r.StartDate, r.EndDate, r.StartTime, r.EndTime)
}
