package components

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/cache"
	"court-booking/internal/infra/events"
	"court-booking/internal/infra/gateway/simulated"
	"court-booking/internal/infra/gateway/webpay"
	"court-booking/internal/infra/notify"
	"court-booking/internal/infra/sweeper"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewAvailabilityCache,
		NewEventPublisher,
		NewPaymentGateway,
		fx.Annotate(
			NewMailer,
			fx.As(new(notify.Mailer)),
		),
		fx.Annotate(
			notify.NewDispatcher,
			fx.As(new(shared.NotificationDispatcher)),
		),
		NewHoldSweeper,
	),
)

func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.AvailabilityCache {
	if cfg.Redis.Addr == "" {
		logger.Info("availability cache in memory")
		return cache.NewMemoryAvailabilityCache(clk)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("availability cache in redis", "addr", cfg.Redis.Addr)
	return cache.NewRedisAvailabilityCache(client, logger)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (events.Publisher, error) {
	var (
		publisher events.Publisher
		err       error
	)
	switch cfg.Events.Driver {
	case "rabbitmq":
		publisher, err = events.NewRabbitPublisher(cfg.Events.RabbitMQURL, cfg.Events.Exchange)
	case "kafka":
		publisher, err = events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.Topic)
	case "", "none":
		publisher = events.NoopPublisher{}
	default:
		return nil, errs.Newf("unknown EVENTS_DRIVER %q", cfg.Events.Driver)
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("event publisher ready", "driver", cfg.Events.Driver)
	return publisher, nil
}

func NewPaymentGateway(cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.PaymentGateway, error) {
	switch cfg.Payment.Driver {
	case "webpay":
		wcfg := webpay.ConfigFor(cfg.Payment.Environment, cfg.Payment.CommerceCode, cfg.Payment.APIKey, cfg.Payment.Timeout)
		logger.Info("payment gateway: webpay", "environment", cfg.Payment.Environment)
		return webpay.NewClient(wcfg, logger), nil
	case "", "simulated":
		logger.Warn("payment gateway: simulated, every transaction is authorized")
		return simulated.NewGateway(cfg.Payment.ReturnURL, clk, logger), nil
	default:
		return nil, errs.Newf("unknown PAYMENT_DRIVER %q", cfg.Payment.Driver)
	}
}

func NewMailer(cfg config.Config) *notify.SMTPMailer {
	return notify.NewSMTPMailer(cfg.Mail)
}

func NewHoldSweeper(lc fx.Lifecycle, holds commands.HoldCommands, cfg config.Config, clk clock.Clock, logger *slog.Logger) *sweeper.HoldSweeper {
	s := sweeper.NewHoldSweeper(holds, clk, cfg.Hold.SweepInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				_ = s.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return s
}
