package components

import (
	"context"
	"time"

	"court-booking/internal/handler"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/infra/sweeper"
	"court-booking/internal/pkg/config"

	"go.uber.org/fx"
)

const rateLimiterEvictEvery = time.Minute

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHoldHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Holds:        p.Holds,
				Payments:     p.Payments,
				Admin:        p.Admin,
				Reservations: p.Reservations,
			}
		},
		func(p middlewareParams) handler.Middlewares {
			return handler.Middlewares{
				Auth:        p.Auth,
				Logger:      p.Logger,
				RateLimiter: p.RateLimiter,
			}
		},
	),
	fx.Invoke(
		handler.NewRouter,
		func(*sweeper.HoldSweeper) {},
	),
)

type handlerParams struct {
	fx.In

	Holds        *api.HoldHandler
	Payments     *api.PaymentHandler
	Admin        *api.AdminHandler
	Reservations *api.ReservationHandler
}

type middlewareParams struct {
	fx.In

	Auth        *middleware.AuthMiddleware
	Logger      *middleware.Logger
	RateLimiter *middleware.RateLimiter
}

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go rl.Run(ctx, rateLimiterEvictEvery)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return rl
}
