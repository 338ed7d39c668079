//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/handler/api"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"
	"smart-parking/tests/common/httptest"
	usecasemock "smart-parking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = int64(7)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *usecasemock.MockReservationCommandUseCase
	mockQueries  *usecasemock.MockReservationQueryUseCase
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = &usecasemock.MockReservationCommandUseCase{}
	s.mockQueries = &usecasemock.MockReservationQueryUseCase{}
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: any bearer token authenticates as testUserID
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", testUserID)
			}
			h(c)
		}
	}

	s.router.POST("/api/reservations", authed(s.handler.CreateReservation))
	s.router.GET("/api/reservations", authed(s.handler.GetReservations))
	s.router.PUT("/api/reservations/:id/complete", authed(s.handler.CompleteReservation))
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) mustRange(start, end string) reservation.TimeRange {
	r, err := reservation.ParseTimeRange(start, end)
	s.Require().NoError(err)
	return r
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/api/reservations"
	reqBody := map[string]any{
		"spot_id":    1,
		"start_time": "2025-01-01 08:00:00",
		"end_time":   "2025-01-01 12:00:00",
	}
	tr := s.mustRange("2025-01-01 08:00:00", "2025-01-01 12:00:00")
	created := reservation.Reconstruct(42, testUserID, 1, tr, reservation.StatusBooked)

	s.Run("success: returns 201 with the reservation record", func() {
		s.mockCommands.On("Create", mock.Anything, testUserID, int64(1), tr).
			Return(created, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(42), response.ID)
		s.Equal("2025-01-01 08:00:00", response.StartTime)
		s.Equal("2025-01-01 12:00:00", response.EndTime)
		s.Equal("Booked", response.Status)
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"spot_id": 1}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on unparseable timestamps", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"spot_id":    1,
			"start_time": "soon",
			"end_time":   "later",
		}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start or end time")
	})

	s.Run("error: 400 on inverted range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"spot_id":    1,
			"start_time": "2025-01-01 12:00:00",
			"end_time":   "2025-01-01 08:00:00",
		}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start or end time")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown spot",
				commandsError:  commands.ErrUnknownSpot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Parking spot does not exist",
			},
			{
				name:           "slot unavailable",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "lock timeout",
				commandsError:  commands.ErrLockTimeout,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "busy",
			},
			{
				// Commands mark the wrapped repository error rather than
				// returning the bare sentinel; the mapping must still hit.
				name:           "lock timeout marked on a wrapped cause",
				commandsError:  errs.Mark(errs.New("lock wait aborted"), commands.ErrLockTimeout),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "busy",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.On("Create", mock.Anything, testUserID, int64(1), tr).
					Return(nil, tc.commandsError).Once()

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservations() {
	url := "/api/reservations"
	tr := s.mustRange("2025-01-01 08:00:00", "2025-01-01 12:00:00")

	views := []queries.ReservationView{
		{ID: 1, UserID: 7, SpotID: 1, StartTime: tr.Start(), EndTime: tr.End(), Status: "Booked"},
	}

	s.Run("success: defaults to today when date is omitted", func() {
		s.mockQueries.On("ListBookedByDate", mock.Anything, time.Time{}).
			Return(views, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reservations, 1)
		s.Equal("2025-01-01 08:00:00", response.Reservations[0].StartTime)
	})

	s.Run("success: passes the parsed date filter", func() {
		wantDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.On("ListBookedByDate", mock.Anything, wantDate).
			Return(views, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-01-01", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=January", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *ReservationHandlerTestSuite) TestCompleteReservation() {
	url := "/api/reservations/42/complete"
	tr := s.mustRange("2025-01-01 08:00:00", "2025-01-01 12:00:00")
	completed := reservation.Reconstruct(42, testUserID, 1, tr, reservation.StatusCompleted)

	s.Run("success: returns 200 with the completed record", func() {
		s.mockCommands.On("Complete", mock.Anything, int64(42), testUserID).
			Return(completed, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Completed", response.Status)
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/abc/complete", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				commandsError:  commands.ErrNotFound,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not found marked on a wrapped cause",
				commandsError:  errs.Mark(errs.New("no rows in result set"), commands.ErrNotFound),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "forbidden",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "another user",
			},
			{
				name:           "already completed",
				commandsError:  commands.ErrAlreadyCompleted,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already completed",
			},
			{
				name:           "concurrent modification",
				commandsError:  commands.ErrConcurrentModification,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "modified concurrently",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.On("Complete", mock.Anything, int64(42), testUserID).
					Return(nil, tc.commandsError).Once()

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
