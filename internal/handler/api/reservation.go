package api

import (
	"net/http"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/slot"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservations queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationHandler(reservations queries.ReservationQueries, availability queries.AvailabilityQueries) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, availability: availability}
}

// @Summary Get reservation
// @Description Look up a reservation by its customer-facing code
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code} [get]
func (h *ReservationHandler) GetByCode(c *gin.Context) {
	code, err := reservation.ParseCode(c.Param("code"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid reservation code", nil)
		return
	}
	view, err := h.reservations.GetByCode(c.Request.Context(), code)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Court availability
// @Description Occupied intervals of a court on a date (reservations and live holds)
// @Tags availability
// @Produce json
// @Param resourceId query string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid query", nil)
		return
	}
	resourceID, err := uuid.Parse(query.ResourceID)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid resourceId", nil)
		return
	}
	date, err := slot.ParseDate(query.Date)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, err.Error(), nil)
		return
	}

	view, err := h.availability.GetAvailability(c.Request.Context(), resourceID, date)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
