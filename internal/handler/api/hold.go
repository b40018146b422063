package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/cookie"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errSessionRequired = errors.New("session id required")

type HoldHandler struct {
	cmds      commands.HoldCommands
	q         queries.HoldQueries
	cookieCfg config.CookieConfig
	clock     clock.Clock
}

func NewHoldHandler(cmds commands.HoldCommands, q queries.HoldQueries, cookieCfg config.CookieConfig, clk clock.Clock) *HoldHandler {
	return &HoldHandler{cmds: cmds, q: q, cookieCfg: cookieCfg, clock: clk}
}

// @Summary Create hold
// @Description Temporarily block a court interval while the customer pays
// @Tags holds
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Booking session id"
// @Param request body reqdto.CreateHoldRequest true "Create hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /holds [post]
func (h *HoldHandler) Create(c *gin.Context) {
	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	sessionID := resolveSessionID(c, req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	cmd, err := req.ToCommand(sessionID)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, err.Error(), nil)
		return
	}

	result, err := h.cmds.CreateHold(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	if ttl := result.ExpiresAt.Sub(h.clock.Now()); ttl > 0 {
		cookie.SetSessionCookie(c, h.cookieCfg, sessionID, ttl)
	}
	c.Header("Location", "/api/holds/"+result.HoldID.String())
	c.JSON(http.StatusCreated, resdto.FromHoldResult(result, sessionID))
}

// @Summary Get hold
// @Description Get a hold by ID
// @Tags holds
// @Produce json
// @Param id path string true "Hold ID"
// @Success 200 {object} queries.HoldView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /holds/{id} [get]
func (h *HoldHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid id", nil)
		return
	}
	view, err := h.q.GetHold(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Release hold
// @Description Release a hold owned by the calling session. Releasing an unknown hold succeeds.
// @Tags holds
// @Param id path string true "Hold ID"
// @Param X-Session-ID header string true "Booking session id"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /holds/{id} [delete]
func (h *HoldHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid id", nil)
		return
	}
	sessionID := resolveSessionID(c, "")
	if sessionID == "" {
		httperr.AbortWithCode(c, http.StatusBadRequest, errSessionRequired, httperr.CodeValidation, "X-Session-ID header required", nil)
		return
	}
	if err := h.cmds.ReleaseHold(c.Request.Context(), id, sessionID); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveSessionID prefers the header, then the session cookie, then the body.
func resolveSessionID(c *gin.Context, fromBody string) string {
	if id := strings.TrimSpace(cookie.GetSessionID(c)); id != "" {
		return id
	}
	return strings.TrimSpace(fromBody)
}
