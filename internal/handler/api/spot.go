package api

import (
	"net/http"

	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SpotHandler struct {
	spots usecase.SpotQueryUseCase
}

func NewSpotHandler(spots usecase.SpotQueryUseCase) *SpotHandler {
	return &SpotHandler{spots: spots}
}

func (h *SpotHandler) GetSpots(c *gin.Context) {
	catalog, err := h.spots.Catalog(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response, err := resdto.FromSpotCatalog(catalog)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, response)
}
