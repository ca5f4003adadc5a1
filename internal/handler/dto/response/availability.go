package response

import (
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type DayAvailabilityResponse struct {
	Date  string                        `json:"date"`
	Halls []queries.DayAvailabilityView `json:"halls"`
}

type RangeAvailabilityResponse struct {
	StartDate string                          `json:"startDate"`
	EndDate   string                          `json:"endDate"`
	Halls     []queries.RangeAvailabilityView `json:"halls"`
}

type HallResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Active   bool      `json:"active"`
}

func FromHallViews(views []*queries.HallView) []HallResponse {
	out := make([]HallResponse, len(views))
	for i, v := range views {
		out[i] = HallResponse{
			ID:       v.ID,
			Name:     v.Name,
			Capacity: v.Capacity,
			Active:   v.Active,
		}
	}
	return out
}
