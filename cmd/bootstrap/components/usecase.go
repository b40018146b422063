package components

import (
	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	reservation.NewFactory,
	func(cfg config.Config) hold.Policy {
		return hold.Policy{
			CustomerTTL: cfg.Hold.CustomerTTL,
			ProbeTTL:    cfg.Hold.ProbeTTL,
		}
	},
	func(cfg config.Config) commands.PaymentConfig {
		return commands.PaymentConfig{ReturnURL: cfg.Payment.ReturnURL}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHoldUseCase,
		commands.NewPaymentUseCase,
		commands.NewAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHoldQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
