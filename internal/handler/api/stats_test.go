//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"smart-parking/internal/handler/api"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/usecase/queries"
	"smart-parking/tests/common/httptest"
	usecasemock "smart-parking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatsHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockStats *usecasemock.MockStatsQueryUseCase
	handler   *api.StatsHandler
}

func (s *StatsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockStats = &usecasemock.MockStatsQueryUseCase{}
	s.handler = api.NewStatsHandler(s.mockStats)

	s.router.GET("/api/stats", s.handler.GetStats)
}

func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}

func (s *StatsHandlerTestSuite) TestGetStats() {
	url := "/api/stats"

	s.Run("success: returns ranked hours as-is", func() {
		rows := []queries.HourOccupancy{
			{Hour: 9, Occupancy: 5},
			{Hour: 14, Occupancy: 5},
			{Hour: 8, Occupancy: 2},
			{Hour: 0, Occupancy: 0},
		}
		s.mockStats.On("PeakOccupancyHours", mock.Anything).Return(rows, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.PeakOccupancyHours, 4)
		// Ranking is computed store-side; the handler must not reorder.
		s.Equal(int32(9), response.PeakOccupancyHours[0].Hour)
		s.Equal(int64(5), response.PeakOccupancyHours[0].Occupancy)
		s.Equal(int32(0), response.PeakOccupancyHours[3].Hour)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockStats.On("PeakOccupancyHours", mock.Anything).
			Return(nil, errors.New("database down")).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
