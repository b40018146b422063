package api

import (
	"errors"
	"net/http"

	"court-booking/internal/domain/user"
	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNoActor = errors.New("actor missing from context")

type AdminHandler struct {
	cmds  commands.AdminCommands
	holds commands.HoldCommands
}

func NewAdminHandler(cmds commands.AdminCommands, holds commands.HoldCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds, holds: holds}
}

// @Summary Create administrative reservation
// @Description Book a court on behalf of a customer, bypassing the payment gateway
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminReservationRequest true "Administrative reservation request"
// @Success 201 {object} resdto.AdminReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations [post]
func (h *AdminHandler) CreateReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.AdminReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(staffSessionID(c, req.SessionID, actor))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, err.Error(), nil)
		return
	}

	result, err := h.cmds.CreateAdministrativeReservation(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+result.ReservationCode)
	c.JSON(http.StatusCreated, resdto.FromAdminResult(result))
}

// @Summary Probe holds
// @Description Place short administrative holds on every free court among the given ones
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProbeHoldsRequest true "Probe holds request"
// @Success 200 {object} resdto.ProbeHoldsResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/probe-holds [post]
func (h *AdminHandler) ProbeHolds(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.ProbeHoldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	sessionID := staffSessionID(c, req.SessionID, actor)
	cmd, err := req.ToCommand(sessionID, actor)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, err.Error(), nil)
		return
	}

	result, err := h.holds.ProbeHolds(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProbeResult(result, sessionID))
}

// staffSessionID falls back to a per-actor session so probe holds placed
// without an explicit session can still be consumed by the same staff member.
func staffSessionID(c *gin.Context, fromBody string, actor user.Actor) string {
	if id := resolveSessionID(c, fromBody); id != "" {
		return id
	}
	return "admin:" + actor.ID().String()
}
