package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Holds        *api.HoldHandler
	Payments     *api.PaymentHandler
	Admin        *api.AdminHandler
	Reservations *api.ReservationHandler
}

type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	Logger      *middleware.Logger
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := []gin.HandlerFunc{mw.Auth.RequireAuth(), mw.Auth.RequireRoleAtLeast(user.RoleManager)}

	apiGroup := engine.Group("/api")
	{
		holds := apiGroup.Group("/holds")
		addRoutes(holds, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Holds.Create, Mw: []gin.HandlerFunc{mw.RateLimiter.Middleware()}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Holds.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Holds.Release},
		})

		payments := apiGroup.Group("/payments")
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/init", Handler: h.Payments.Initiate},
			{Method: http.MethodPost, Path: "/confirm", Handler: h.Payments.Confirm},
			{Method: http.MethodPost, Path: "/refund", Handler: h.Payments.Refund, Mw: staff},
			{Method: http.MethodGet, Path: "/:token/status", Handler: h.Payments.Status, Mw: staff},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(staff...)
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Admin.CreateReservation},
			{Method: http.MethodPost, Path: "/probe-holds", Handler: h.Admin.ProbeHolds},
			{Method: http.MethodGet, Path: "/payment-backups", Handler: h.Payments.PendingBackups},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Reservations.Availability},
			{Method: http.MethodGet, Path: "/reservations/:code", Handler: h.Reservations.GetByCode},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
