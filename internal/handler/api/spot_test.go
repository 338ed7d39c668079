//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/handler/api"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/usecase/queries"
	"smart-parking/tests/common/httptest"
	usecasemock "smart-parking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SpotHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSpots *usecasemock.MockSpotQueryUseCase
	handler   *api.SpotHandler
}

func (s *SpotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockSpots = &usecasemock.MockSpotQueryUseCase{}
	s.handler = api.NewSpotHandler(s.mockSpots)

	s.router.GET("/api/spots", s.handler.GetSpots)
}

func TestSpotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpotHandlerTestSuite))
}

func (s *SpotHandlerTestSuite) TestGetSpots() {
	url := "/api/spots"

	s.Run("success: returns spots with the fixed slot windows", func() {
		catalog := &queries.SpotCatalog{
			Spots: []queries.SpotView{
				{ID: 1, SpotNumber: 1, FloorNumber: 1, SpotType: "Regular"},
				{ID: 2, SpotNumber: 2, FloorNumber: 1, SpotType: "Regular"},
			},
			SlotWindows: reservation.DailySlotWindows(),
		}
		s.mockSpots.On("Catalog", mock.Anything).Return(catalog, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SpotCatalogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Spots, 2)
		s.Equal(int32(1), response.Spots[0].SpotNumber)
		s.Require().Len(response.SlotWindows, 3)
		s.Equal("08:00", response.SlotWindows[0].Start)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockSpots.On("Catalog", mock.Anything).
			Return(nil, errors.New("database down")).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
