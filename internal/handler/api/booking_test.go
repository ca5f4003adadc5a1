//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hall-booking/internal/domain/user"
	"hall-booking/internal/handler/api"
	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"
	"hall-booking/tests/common/httptest"
	"hall-booking/tests/common/testutil"
	commandsmock "hall-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDirectBookingCommands
	handler      *api.BookingHandler
	adminID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDirectBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)
	s.adminID = uuid.New()

	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/bookings", adminMiddleware, s.handler.CreateBooking)
	s.router.DELETE("/admin/bookings/:id", adminMiddleware, s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HallIDs:   []uuid.UUID{uuid.New()},
		StartDate: "2026-09-10",
		EndDate:   "2026-09-10",
		StartTime: "09:00",
		EndTime:   "11:00",
		Note:      "Graduation ceremony",
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/admin/bookings"
	reqBody := s.bookingRequestDTO()

	s.Run("success: returns 201 Created and stamps the creator", func() {
		returnView := &queries.BookingView{
			ID:        uuid.New(),
			Note:      reqBody.Note,
			CreatedBy: s.adminID,
			CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Equal(s.adminID, p.CreatedBy)
				s.False(p.IsBlackout)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(s.adminID, response.CreatedBy)
	})

	s.Run("success: blackout flag is forwarded", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.CreateBookingParams) (*queries.BookingView, error) {
				s.True(p.IsBlackout)
				return &queries.BookingView{ID: uuid.New(), IsBlackout: true}, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("is_blackout", true))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: validation and malformed windows", func() {
		testCases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing field: hall_ids", mutate: testutil.Field("hall_ids", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "zero length time band", mutate: testutil.Field("end_time", "09:00"), expectCode: http.StatusUnprocessableEntity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for unknown hall", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrHallNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hall not found")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
