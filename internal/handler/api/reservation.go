package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "smart-parking/internal/handler/dto/request"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase"
	"smart-parking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const dateParamLayout = "2006-01-02"

type ReservationHandler struct {
	commands usecase.ReservationCommandUseCase
	queries  usecase.ReservationQueryUseCase
}

func NewReservationHandler(cmds usecase.ReservationCommandUseCase, qrys usecase.ReservationQueryUseCase) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrys,
	}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error")
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	timeRange, err := req.ToTimeRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start or end time")
		return
	}

	res, err := h.commands.Create(c.Request.Context(), userID, req.SpotID, timeRange)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUnknownSpot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Parking spot does not exist")
		case errs.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Spot is already booked for this time slot")
		case errs.Is(err, commands.ErrLockTimeout):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation system is busy, please retry")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationEntity(res))
}

func (h *ReservationHandler) GetReservations(c *gin.Context) {
	var date time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateParamLayout, dateStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	views, err := h.queries.ListBookedByDate(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format")
		return
	}

	res, err := h.commands.Complete(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation not found")
		case errs.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation belongs to another user")
		case errs.Is(err, commands.ErrAlreadyCompleted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation is already completed")
		case errs.Is(err, commands.ErrConcurrentModification):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation was modified concurrently")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationEntity(res))
}
