package response

import (
	"time"

	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	RequesterID     uuid.UUID `json:"requesterId"`
	RequesterRole   string    `json:"requesterRole"`
	Halls           []HallRef `json:"halls"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Status          string    `json:"status"`
	Purpose         string    `json:"purpose"`
	AttendeeCount   int       `json:"attendeeCount"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type HallRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	Halls      []HallRef `json:"halls"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	IsBlackout bool      `json:"isBlackout"`
	Note       string    `json:"note,omitempty"`
	CreatedBy  uuid.UUID `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromRequestView(rm *queries.RequestView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRequestViews(rms []*queries.RequestView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRequestView(rm)
	}
	return out
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
