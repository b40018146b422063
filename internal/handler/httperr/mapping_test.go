//go:build unit

package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"court-booking/internal/domain/payment"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"slot conflict", commands.ErrSlotConflict, http.StatusConflict, CodeSlotConflict},
		{"wrapped slot conflict", errs.Wrap(commands.ErrSlotConflict, "create hold"), http.StatusConflict, CodeSlotConflict},
		{"hold expired", commands.ErrHoldExpired, http.StatusGone, CodeHoldExpired},
		{"query not found", queries.ErrHoldNotFound, http.StatusNotFound, CodeNotFound},
		{"marked validation", errs.Mark(errs.New("bad email"), commands.ErrDomainValidation), http.StatusBadRequest, CodeValidation},
		{"gateway transport", errs.Mark(errs.New("timeout"), shared.ErrGatewayTransport), http.StatusBadGateway, CodeGatewayError},
		{"declined inside recovery", &commands.RecoveryError{Err: commands.ErrGatewayDeclined}, http.StatusPaymentRequired, CodePaymentDeclined},
		{"transport inside recovery", &commands.RecoveryError{Err: errs.Mark(errs.New("reset"), shared.ErrGatewayTransport)}, http.StatusBadGateway, CodeGatewayError},
		{"confirmation error wins over conflict", &commands.RecoveryError{Err: errs.Mark(commands.ErrSlotConflict, commands.ErrConfirmationError)}, http.StatusInternalServerError, CodeConfirmationError},
		{"not confirmable", commands.ErrPaymentNotConfirmable, http.StatusConflict, CodeInvalidState},
		{"unknown", errs.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, msg := StatusOf(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestAbortWithUsecaseError_AttachesRecoveryDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	holdID := uuid.New()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	AbortWithUsecaseError(c, &commands.RecoveryError{
		Stage:             payment.StageConfirmationError,
		Token:             "tok-1",
		HoldID:            holdID,
		ReservationCode:   "ABC123",
		AuthorizationCode: "1213",
		Err:               errs.Mark(errs.New("insert failed"), commands.ErrConfirmationError),
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body Response
	var detail struct {
		Detail RecoveryDetail `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, CodeConfirmationError, body.Error.Code)
	assert.Equal(t, "tok-1", detail.Detail.Token)
	assert.Equal(t, holdID.String(), detail.Detail.HoldID)
	assert.Equal(t, "CONFIRMATION_ERROR", detail.Detail.Stage)
	assert.True(t, c.IsAborted())
	assert.Len(t, c.Errors, 1)
}

func TestAbortWithCode_PanicsOnNilError(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	assert.Panics(t, func() { AbortWithCode(c, http.StatusBadRequest, nil, CodeValidation, "x", nil) })
}
