package api

import (
	"net/http"

	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats usecase.StatsQueryUseCase
}

func NewStatsHandler(stats usecase.StatsQueryUseCase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	rows, err := h.stats.PeakOccupancyHours(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromHourOccupancy(rows))
}
