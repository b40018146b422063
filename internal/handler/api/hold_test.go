//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/cookie"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HoldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHoldCommands
	mockQueries  *queriesmock.MockHoldQueries
	holds        *builder.HoldBuilder
}

func (s *HoldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHoldCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHoldQueries(s.mockCtrl)
	s.holds = builder.NewHoldBuilder()

	handler := api.NewHoldHandler(s.mockCommands, s.mockQueries, config.CookieConfig{SameSite: "Lax"}, clock.NewMockClock(s.holds.Now))

	s.router.POST("/holds", handler.Create)
	s.router.GET("/holds/:id", handler.Get)
	s.router.DELETE("/holds/:id", handler.Release)
}

func (s *HoldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldHandlerTestSuite))
}

type testCaseHold struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *HoldHandlerTestSuite) TestCreate() {
	url := "/holds"
	reqBody := s.holds.BuildCreateRequestDTO()
	result := s.holds.BuildResult()

	s.Run("success: returns 201 with hold and session cookie", func() {
		s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateHoldRequest) (*commands.HoldResult, error) {
				s.Equal(s.holds.ResourceID, req.ResourceID)
				s.Equal("session-1", req.SessionID)
				s.Equal(600, req.Interval.Start.Minutes())
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.HoldID.String(), body.HoldID)
		s.Equal("ABC123", body.ReservationCode)
		s.Equal(int64(20000), body.AmountDue)
		s.Equal(result.ExpiresAt.Unix(), body.ExpiresAt)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/holds/" + result.HoldID.String()})

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionIDCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal("session-1", sessionCookie.Value)
		s.Equal(int(s.holds.TTL.Seconds()), sessionCookie.MaxAge)
	})

	s.Run("success: header session id wins over body", func() {
		s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateHoldRequest) (*commands.HoldResult, error) {
				s.Equal("from-header", req.SessionID)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{cookie.SessionIDHeader: "from-header"})
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("success: generates a session id when none is given", func() {
		var generated string
		s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateHoldRequest) (*commands.HoldResult, error) {
				generated = req.SessionID
				return result, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("session_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var res resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		_, err := uuid.Parse(generated)
		s.NoError(err)
		s.Equal(generated, res.SessionID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseHold{
			{name: "missing resource_id", mutate: testutil.Field("resource_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing customer", mutate: testutil.Field("customer", nil), expectCode: http.StatusBadRequest},
			{name: "paid percentage 30", mutate: testutil.Field("paid_percentage", 30), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("date", "10/03/2025"), expectCode: http.StatusBadRequest},
			{name: "start after end", mutate: testutil.Field("start_time", "12:00"), expectCode: http.StatusBadRequest},
			{name: "start equals end", mutate: testutil.Field("start_time", "11:00"), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("customer", map[string]any{"name": "Ana", "email": "nope"}), expectCode: http.StatusBadRequest},
			{name: "discount code too long", mutate: testutil.Field("discount_code", strings.Repeat("x", 65)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "VALIDATION_ERROR")
			})
		}
	})

	s.Run("success: paid percentage 50 is accepted", func() {
		half := builder.NewHoldBuilder().AsHalfPayment()
		s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any()).
			Return(half.BuildResult(), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("paid_percentage", 50))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var res resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(int64(10000), res.AmountDue)
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"slot conflict", commands.ErrSlotConflict, http.StatusConflict, "SLOT_CONFLICT"},
			{"unknown court", commands.ErrResourceNotFound, http.StatusNotFound, "NOT_FOUND"},
			{"domain validation", errs.Mark(errs.New("customer name is required"), commands.ErrDomainValidation), http.StatusBadRequest, "VALIDATION_ERROR"},
			{"database failure", errs.Mark(errs.New("boom"), commands.ErrDatabaseOperationFailed), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
				s.Nil(httptest.ExtractCookie(rec, cookie.SessionIDCookieName))
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *HoldHandlerTestSuite) TestGet() {
	view := s.holds.BuildView()

	s.Run("success: returns the hold view", func() {
		s.mockQueries.EXPECT().GetHold(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/"+view.ID.String(), nil, "")

		var body queries.HoldView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ReservationCode, body.ReservationCode)
		s.Equal("10:00", body.StartTime)
	})

	s.Run("error: 404 when the hold is gone", func() {
		s.mockQueries.EXPECT().GetHold(gomock.Any(), view.ID).Return(nil, queries.ErrHoldNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/"+view.ID.String(), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestRelease
// ================================================================================

func (s *HoldHandlerTestSuite) TestRelease() {
	id := uuid.New()
	url := "/holds/" + id.String()

	s.Run("success: 204 for the owning session", func() {
		s.mockCommands.EXPECT().ReleaseHold(gomock.Any(), id, "session-1").Return(nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodDelete, url, nil,
			map[string]string{cookie.SessionIDHeader: "session-1"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: session cookie is accepted", func() {
		s.mockCommands.EXPECT().ReleaseHold(gomock.Any(), id, "cookie-session").Return(nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, url, nil,
			[]*http.Cookie{{Name: cookie.SessionIDCookieName, Value: "cookie-session"}}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for another session", func() {
		s.mockCommands.EXPECT().ReleaseHold(gomock.Any(), id, "intruder").Return(commands.ErrHoldNotOwned).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodDelete, url, nil,
			map[string]string{cookie.SessionIDHeader: "intruder"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("error: 400 without a session id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Session-ID header required")
	})
}
