package api

import (
	"errors"
	"net/http"
	"strings"

	"hall-booking/internal/domain/reservation"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	halls        queries.HallQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, halls queries.HallQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		halls:        halls,
	}
}

// @Summary Day availability
// @Description Per-hall availability for a single date; empty hall filter means all active halls
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param hall_ids query string false "Comma-separated hall IDs"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/day [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	date, err := reservation.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	hallIDs, ok := parseHallFilter(c)
	if !ok {
		return
	}

	views, err := h.availability.Day(c.Request.Context(), hallIDs, date)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DayAvailabilityResponse{
		Date:  date.Format("2006-01-02"),
		Halls: views,
	})
}

// @Summary Range availability
// @Description Per-hall worst-wins availability merged over a date range
// @Tags availability
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param hall_ids query string false "Comma-separated hall IDs"
// @Success 200 {object} resdto.RangeAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/range [get]
func (h *AvailabilityHandler) Range(c *gin.Context) {
	startDate, err := reservation.ParseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing start_date, expected YYYY-MM-DD",
		})
		return
	}
	endDate, err := reservation.ParseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing end_date, expected YYYY-MM-DD",
		})
		return
	}

	hallIDs, ok := parseHallFilter(c)
	if !ok {
		return
	}

	views, err := h.availability.Range(c.Request.Context(), hallIDs, startDate, endDate)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RangeAvailabilityResponse{
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   endDate.Format("2006-01-02"),
		Halls:     views,
	})
}

// @Summary List halls
// @Description List active halls
// @Tags halls
// @Produce json
// @Success 200 {array} resdto.HallResponse
// @Router /halls [get]
func (h *AvailabilityHandler) ListHalls(c *gin.Context) {
	views, err := h.halls.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHallViews(views))
}

func parseHallFilter(c *gin.Context) ([]uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query("hall_ids"))
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid hall ID in hall_ids",
			})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func respondAvailabilityError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability range",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
