//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/dto/request"
	"court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/authtest"
	"court-booking/tests/common/dbtest"
	"court-booking/tests/common/httptest"
	"court-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	holdsURL          = "/api/holds"
	paymentInitURL    = "/api/payments/init"
	paymentConfirmURL = "/api/payments/confirm"
	paymentRefundURL  = "/api/payments/refund"
	reservationURL    = "/api/reservations/%s"
	availabilityURL   = "/api/availability?resourceId=%s&date=%s"
	adminReserveURL   = "/api/admin/reservations"
	bookingDate       = "2030-03-10"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) court(t *testing.T) (complexID, courtID uuid.UUID) {
	t.Helper()
	complexID = dbtest.CreateTestComplex(t, s.DB, "Complejo Norte", nil)
	courtID = dbtest.CreateTestCourt(t, s.DB, complexID, "Cancha 1", 20000)
	return complexID, courtID
}

func holdBody(courtID uuid.UUID, start, end string, pct int) request.CreateHoldRequest {
	return request.CreateHoldRequest{
		ResourceID: courtID,
		SlotRequest: request.SlotRequest{
			Date:      bookingDate,
			StartTime: start,
			EndTime:   end,
		},
		Customer: request.CustomerRequest{
			Name:  "Ana Rojas",
			Email: "ana@example.com",
			Phone: "+56911112222",
		},
		PaidPercentage: pct,
	}
}

func (s *BookingSuite) placeHold(t *testing.T, body request.CreateHoldRequest, session string) response.HoldResponse {
	t.Helper()
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, holdsURL, body, map[string]string{"X-Session-ID": session})
	var created response.HoldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

func (s *BookingSuite) payAndConfirm(t *testing.T, hold response.HoldResponse, session string) (string, response.ConfirmationResponse) {
	t.Helper()
	initBody := request.InitiatePaymentRequest{HoldID: uuid.MustParse(hold.HoldID), Amount: hold.AmountDue}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, paymentInitURL, initBody, map[string]string{"X-Session-ID": session})
	var initiated response.InitiatePaymentResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &initiated)
	require.NotEmpty(t, initiated.Token)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, paymentConfirmURL, request.ConfirmPaymentRequest{Token: initiated.Token}, "")
	var confirmed response.ConfirmationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
	return initiated.Token, confirmed
}

func (s *BookingSuite) reservation(t *testing.T, code string) queries.ReservationView {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, code), nil, "")
	var view queries.ReservationView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
	return view
}

// =============================================================================
// Double booking
// =============================================================================

func (s *BookingSuite) TestConcurrentHolds() {
	s.Run("Normal case: exactly one of many concurrent holds wins the slot", func() {
		t := s.T()
		_, courtID := s.court(t)
		body := holdBody(courtID, "10:00", "11:30", 100)

		const attempts = 20
		statuses := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, holdsURL, body,
					map[string]string{"X-Session-ID": fmt.Sprintf("session-%d", i)})
				statuses[i] = w.Code
			}(i)
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, attempts-1, conflicts)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "temporary_holds"))
	})

	s.Run("Normal case: overlapping interval on another start time is rejected", func() {
		t := s.T()
		_, courtID := s.court(t)
		s.placeHold(t, holdBody(courtID, "10:00", "11:30", 100), "session-a")

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, holdsURL,
			holdBody(courtID, "11:00", "12:00", 100), map[string]string{"X-Session-ID": "session-b"})

		httptest.AssertErrorCode(t, w, http.StatusConflict, httperr.CodeSlotConflict)
	})

	s.Run("Normal case: released hold frees the slot", func() {
		t := s.T()
		_, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "10:00", "11:00", 100), "session-a")

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodDelete, holdsURL+"/"+hold.HoldID, nil,
			map[string]string{"X-Session-ID": "session-a"})
		require.Equal(t, http.StatusNoContent, w.Code)

		s.placeHold(t, holdBody(courtID, "10:00", "11:00", 100), "session-b")
	})

	s.Run("Error case: another session cannot release the hold", func() {
		t := s.T()
		_, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "10:00", "11:00", 100), "session-a")

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodDelete, holdsURL+"/"+hold.HoldID, nil,
			map[string]string{"X-Session-ID": "session-b"})

		httptest.AssertErrorCode(t, w, http.StatusForbidden, httperr.CodeForbidden)
	})
}

// =============================================================================
// Payment flow
// =============================================================================

func (s *BookingSuite) TestPaymentFlow() {
	s.Run("Normal case: hold, pay and confirm materializes the reservation", func() {
		t := s.T()
		_, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "10:00", "11:30", 50), "session-a")
		require.Equal(t, int64(30000), hold.TotalPrice)
		require.Equal(t, int64(15000), hold.AmountDue)

		_, confirmed := s.payAndConfirm(t, hold, "session-a")
		assert.Equal(t, hold.ReservationCode, confirmed.ReservationCode)
		assert.False(t, confirmed.IsReplayed)

		got := s.reservation(t, hold.ReservationCode)
		want := queries.ReservationView{
			Code:           hold.ReservationCode,
			ResourceID:     courtID,
			Date:           bookingDate,
			StartTime:      "10:00",
			EndTime:        "11:30",
			CustomerName:   "Ana Rojas",
			CustomerEmail:  "ana@example.com",
			TotalPrice:     30000,
			PaidPercentage: 50,
			PaidOnline:     15000,
			PendingAtVenue: 15000,
			Origin:         "direct",
			Commission:     1050,
			CommissionVAT:  200,
			Status:         "confirmed",
			PaymentStatus:  "paid",
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(queries.ReservationView{}, "ID", "CreatedAt")); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
		assert.Zero(t, dbtest.CountRows(t, s.DB, "temporary_holds"))
	})

	s.Run("Normal case: confirming twice replays the first outcome", func() {
		t := s.T()
		_, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "12:00", "13:00", 100), "session-a")
		token, _ := s.payAndConfirm(t, hold, "session-a")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentConfirmURL, request.ConfirmPaymentRequest{Token: token}, "")
		var replay response.ConfirmationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)

		assert.True(t, replay.IsReplayed)
		assert.Equal(t, hold.ReservationCode, replay.ReservationCode)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Normal case: confirmed reservation blocks new holds", func() {
		t := s.T()
		_, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "12:00", "13:00", 100), "session-a")
		s.payAndConfirm(t, hold, "session-a")

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, holdsURL,
			holdBody(courtID, "12:30", "13:30", 100), map[string]string{"X-Session-ID": "session-b"})

		httptest.AssertErrorCode(t, w, http.StatusConflict, httperr.CodeSlotConflict)
	})

	s.Run("Error case: payment amount must match the hold", func() {
		t := s.T()
		_, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "12:00", "13:00", 100), "session-a")

		body := request.InitiatePaymentRequest{HoldID: uuid.MustParse(hold.HoldID), Amount: hold.AmountDue - 1}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, paymentInitURL, body, map[string]string{"X-Session-ID": "session-a"})

		httptest.AssertErrorCode(t, w, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("Normal case: refund cancels the reservation and frees the slot", func() {
		t := s.T()
		complexID, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "12:00", "13:00", 100), "session-a")
		token, _ := s.payAndConfirm(t, hold, "session-a")
		staff := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, user.RoleManager, &complexID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentRefundURL,
			request.RefundRequest{Token: token, Amount: hold.AmountDue}, staff)
		var refunded response.RefundResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &refunded)
		assert.Equal(t, hold.ReservationCode, refunded.ReservationCode)

		got := s.reservation(t, hold.ReservationCode)
		assert.Equal(t, "cancelled", got.Status)
		assert.Equal(t, "refunded", got.PaymentStatus)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, courtID, bookingDate), nil, "")
		var availability queries.AvailabilityView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &availability)
		assert.Empty(t, availability.Occupied)
	})

	s.Run("Error case: manager of another complex cannot refund", func() {
		t := s.T()
		_, courtID := s.court(t)
		hold := s.placeHold(t, holdBody(courtID, "14:00", "15:00", 100), "session-a")
		token, _ := s.payAndConfirm(t, hold, "session-a")
		other := uuid.New()
		staff := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, user.RoleManager, &other)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentRefundURL,
			request.RefundRequest{Token: token, Amount: hold.AmountDue}, staff)

		httptest.AssertErrorCode(t, w, http.StatusForbidden, httperr.CodeForbidden)
		assert.Equal(t, "confirmed", s.reservation(t, hold.ReservationCode).Status)
	})

	s.Run("Error case: refund requires a staff token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentRefundURL,
			request.RefundRequest{Token: "sim-unknown", Amount: 1000}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Administrative reservations
// =============================================================================

func (s *BookingSuite) TestAdministrativeReservation() {
	adminBody := func(courtID uuid.UUID) request.AdminReservationRequest {
		return request.AdminReservationRequest{
			ResourceID: courtID,
			SlotRequest: request.SlotRequest{
				Date:      bookingDate,
				StartTime: "18:00",
				EndTime:   "19:30",
			},
			Customer:      request.CustomerRequest{Name: "Walk-in", Phone: "+56900000000"},
			ContactMethod: "whatsapp",
		}
	}

	s.Run("Normal case: manager books with the contact method discount", func() {
		t := s.T()
		complexID, courtID := s.court(t)
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, user.RoleManager, &complexID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminReserveURL, adminBody(courtID), token)
		var created response.AdminReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		assert.Equal(t, int64(28500), created.Price)
		assert.Equal(t, int64(525), created.Commission)
		assert.Equal(t, int64(100), created.CommissionVAT)
		assert.Equal(t, "administrative", s.reservation(t, created.ReservationCode).Origin)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, holdsURL,
			holdBody(courtID, "19:00", "20:00", 100), map[string]string{"X-Session-ID": "session-a"})
		httptest.AssertErrorCode(t, w, http.StatusConflict, httperr.CodeSlotConflict)
	})

	s.Run("Error case: manager of another complex is forbidden", func() {
		t := s.T()
		_, courtID := s.court(t)
		other := uuid.New()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, user.RoleManager, &other)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminReserveURL, adminBody(courtID), token)

		httptest.AssertErrorCode(t, w, http.StatusForbidden, httperr.CodeForbidden)
		assert.Zero(t, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Error case: anonymous caller", func() {
		t := s.T()
		_, courtID := s.court(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminReserveURL, adminBody(courtID), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
