package components

import (
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/config"
	"foodshare-api/internal/usecase"
	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.MatchPolicy {
		return commands.MatchPolicy{
			ReopenWhenUnrequested: cfg.Match.ReopenWhenUnrequested,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewDonationCommands,
		commands.NewMatchCommands,
		commands.NewExpiryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewDonationQueries,
		queries.NewRequestQueries,
		NewMatchQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewMatchQueries(readStore queries.DonationReadStore, directory shared.UserDirectory, clk clock.Clock, cfg config.Config) queries.MatchQueries {
	return queries.NewMatchQueries(readStore, directory, clk, cfg.Match.DefaultRadiusKm)
}
