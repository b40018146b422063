//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/slot"
	"court-booking/internal/handler/api"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/httptest"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *queriesmock.MockReservationQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	handler := api.NewReservationHandler(s.mockReservations, s.mockAvailability)
	s.router.GET("/reservations/:code", handler.GetByCode)
	s.router.GET("/availability", handler.Availability)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestGetByCode() {
	s.Run("success: returns the reservation", func() {
		view := &queries.ReservationView{
			ID:             uuid.New(),
			Code:           "ABC123",
			TotalPrice:     20000,
			PaidPercentage: 50,
			PaidOnline:     10000,
			PendingAtVenue: 10000,
			Status:         "confirmed",
			CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		s.mockReservations.EXPECT().GetByCode(gomock.Any(), reservation.Code("ABC123")).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc123", nil, "")

		var body queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(10000), body.PendingAtVenue)
	})

	s.Run("error: 400 on malformed code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/ABC-12", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockReservations.EXPECT().GetByCode(gomock.Any(), reservation.Code("ZZZ999")).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/ZZZ999", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *ReservationHandlerTestSuite) TestAvailability() {
	courtID := uuid.New()

	s.Run("success: occupied intervals", func() {
		view := &queries.AvailabilityView{
			ResourceID: courtID,
			Date:       "2025-03-10",
			Occupied:   []queries.OccupiedInterval{{StartTime: "10:00", EndTime: "11:00"}},
		}
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), courtID, slot.Date("2025-03-10")).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?resourceId="+courtID.String()+"&date=2025-03-10", nil, "")

		var body queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Occupied, body.Occupied)
	})

	s.Run("error: 400 on bad query", func() {
		for _, query := range []string{
			"",
			"?resourceId=nope&date=2025-03-10",
			"?resourceId=" + courtID.String(),
			"?resourceId=" + courtID.String() + "&date=2025-13-40",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability"+query, nil, "")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
		}
	})
}
