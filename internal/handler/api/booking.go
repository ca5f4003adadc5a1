package api

import (
	"net/http"

	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands commands.DirectBookingCommands
}

func NewBookingHandler(cmds commands.DirectBookingCommands) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
	}
}

// @Summary Create direct booking
// @Description Create an administrative booking or blackout; never blocked by existing records
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	window, err := req.Window()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateBookingParams{
		HallIDs:    req.HallIDs,
		Window:     window,
		IsBlackout: req.IsBlackout,
		Note:       req.Note,
		CreatedBy:  userID,
	})
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Delete direct booking
// @Description Remove an administrative booking or blackout
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
