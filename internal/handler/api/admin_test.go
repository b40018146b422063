//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/usecase"
	"court-booking/internal/usecase/commands"
	"court-booking/tests/common/authtest"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockAdmin *commandsmock.MockAdminCommands
	mockHolds *commandsmock.MockHoldCommands
	jwt       *authtest.JWTHelper
	complexID uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockHolds = commandsmock.NewMockHoldCommands(s.mockCtrl)
	s.complexID = uuid.New()

	cfg := config.NewTestConfig()
	s.jwt = authtest.NewJWTHelper(cfg.JWT)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, time.Hour)))

	handler := api.NewAdminHandler(s.mockAdmin, s.mockHolds)
	staff := s.router.Group("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleManager))
	staff.POST("/reservations", handler.CreateReservation)
	staff.POST("/probe-holds", handler.ProbeHolds)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) managerToken() string {
	return s.jwt.GenerateToken(s.T(), user.RoleManager, &s.complexID)
}

func adminRequestBody(resourceID uuid.UUID) map[string]any {
	return map[string]any{
		"resource_id":    resourceID.String(),
		"date":           "2025-03-10",
		"start_time":     "18:00",
		"end_time":       "19:30",
		"customer":       map[string]any{"name": "Walk-in", "phone": "+56900000000"},
		"contact_method": "whatsapp",
	}
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *AdminHandlerTestSuite) TestCreateReservation() {
	url := "/admin/reservations"
	resourceID := uuid.New()
	reqBody := adminRequestBody(resourceID)
	result := &commands.AdminReservationResult{
		ReservationCode: "XYZ789",
		Price:           27000,
		Commission:      525,
		CommissionVAT:   100,
	}

	s.Run("success: 201 with pricing breakdown", func() {
		s.mockAdmin.EXPECT().CreateAdministrativeReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.AdminReservationRequest, actor user.Actor) (*commands.AdminReservationResult, error) {
				s.Equal(resourceID, req.ResourceID)
				s.Equal("whatsapp", req.ContactMethod)
				s.Equal(90, req.Interval.Minutes())
				s.Equal(user.RoleManager, actor.Role())
				s.Nil(req.ProbeHoldID)
				s.Equal("admin:"+actor.ID().String(), req.SessionID)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.managerToken())

		var body resdto.AdminReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("XYZ789", body.ReservationCode)
		s.Equal(int64(27000), body.Price)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/XYZ789"})
	})

	s.Run("success: probe hold id and its session are forwarded", func() {
		probeID := uuid.New()
		s.mockAdmin.EXPECT().CreateAdministrativeReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.AdminReservationRequest, _ user.Actor) (*commands.AdminReservationResult, error) {
				s.Require().NotNil(req.ProbeHoldID)
				s.Equal(probeID, *req.ProbeHoldID)
				s.Equal("front-desk-1", req.SessionID)
				return result, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("probe_hold_id", probeID.String()),
			testutil.Field("session_id", "front-desk-1"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.managerToken())
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("error: 401 with expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), user.RoleOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseHold{
			{name: "unknown contact method", mutate: testutil.Field("contact_method", "email"), expectCode: http.StatusBadRequest},
			{name: "missing customer name", mutate: testutil.Field("customer", map[string]any{"phone": "1"}), expectCode: http.StatusBadRequest},
			{name: "missing end_time", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
			{name: "inverted interval", mutate: testutil.Field("end_time", "17:00"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.managerToken())
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "VALIDATION_ERROR")
			})
		}
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"occupied slot", commands.ErrSlotConflict, http.StatusConflict, "SLOT_CONFLICT"},
			{"other complex", commands.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
			{"foreign probe hold", commands.ErrHoldNotOwned, http.StatusForbidden, "FORBIDDEN"},
			{"unknown court", commands.ErrResourceNotFound, http.StatusNotFound, "NOT_FOUND"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAdmin.EXPECT().CreateAdministrativeReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.managerToken())
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

// ================================================================================
// TestProbeHolds
// ================================================================================

func (s *AdminHandlerTestSuite) TestProbeHolds() {
	url := "/admin/probe-holds"
	free, taken := uuid.New(), uuid.New()
	reqBody := map[string]any{
		"resource_ids": []string{free.String(), taken.String()},
		"date":         "2025-03-10",
		"start_time":   "20:00",
		"end_time":     "21:00",
	}

	s.Run("success: held and skipped courts", func() {
		s.mockHolds.EXPECT().ProbeHolds(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.ProbeHoldsRequest) (*commands.ProbeHoldsResult, error) {
				s.Equal([]uuid.UUID{free, taken}, req.ResourceIDs)
				s.Equal("admin:"+req.Actor.ID().String(), req.SessionID)
				s.Equal(user.RoleManager, req.Actor.Role())
				s.Require().NotNil(req.Actor.ComplexID())
				s.Equal(s.complexID, *req.Actor.ComplexID())
				return &commands.ProbeHoldsResult{
					Held:    []commands.HoldResult{{HoldID: uuid.New(), ReservationCode: "PRB001", ExpiresAt: time.Now().Add(3 * time.Minute)}},
					Skipped: []commands.ProbeSkip{{ResourceID: taken, Reason: "occupied"}},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.managerToken())

		var body resdto.ProbeHoldsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Held, 1)
		s.Require().Len(body.Skipped, 1)
		s.Equal(taken.String(), body.Skipped[0].ResourceID)
		s.Equal("occupied", body.Skipped[0].Reason)
	})

	s.Run("error: 400 with no courts", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("resource_ids", []string{}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.managerToken())
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}
