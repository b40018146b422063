package api

import (
	"errors"
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errTokenRequired = errors.New("payment token required")

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Initiate payment
// @Description Open a gateway transaction for a live hold
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Booking session id"
// @Param request body reqdto.InitiatePaymentRequest true "Initiate payment request"
// @Success 200 {object} resdto.InitiatePaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/init [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	result, err := h.cmds.InitiatePayment(c.Request.Context(), req.ToCommand(resolveSessionID(c, req.SessionID)))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInitiateResult(result))
}

// @Summary Confirm payment
// @Description Confirm a gateway transaction and materialize the reservation. Replays return the original outcome.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPaymentRequest true "Confirm payment request"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}
	token := req.ResolveToken()
	if token == "" {
		token = c.Query("token_ws")
	}
	if token == "" {
		httperr.AbortWithCode(c, http.StatusBadRequest, errTokenRequired, httperr.CodeValidation, "Payment token required", nil)
		return
	}

	result, err := h.cmds.ConfirmPayment(c.Request.Context(), token)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmationResult(result))
}

// @Summary Refund payment
// @Description Refund an approved payment and cancel its reservation
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RefundRequest true "Refund request"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Refund(c.Request.Context(), req.Token, req.Amount, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}

// @Summary Payment status
// @Description Compare the local transaction with the gateway's view
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param token path string true "Gateway token"
// @Success 200 {object} queries.PaymentStatusView
// @Failure 404 {object} httperr.Response
// @Router /payments/{token}/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	view, err := h.q.GetPaymentStatus(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Pending payment backups
// @Description List confirmation attempts that still need manual recovery
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max records (1-500)"
// @Success 200 {array} queries.BackupView
// @Failure 400 {object} httperr.Response
// @Router /admin/payment-backups [get]
func (h *PaymentHandler) PendingBackups(c *gin.Context) {
	var query reqdto.BackupListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid query", nil)
		return
	}
	views, err := h.q.ListPendingBackups(c.Request.Context(), query.Limit)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
