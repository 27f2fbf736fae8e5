package components

import (
	"math/rand"
	"time"

	"glowscore/internal/domain/analysis"
	"glowscore/internal/pkg/clock"
	"glowscore/internal/pkg/config"
	"glowscore/internal/pkg/identity"
	"glowscore/internal/usecase"
	"glowscore/internal/usecase/commands"
	"glowscore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	identity.NewIPResolver,
	func(cfg config.Config) config.AdminConfig {
		return cfg.Admin
	},
	func() *analysis.Scorer {
		return analysis.NewScorer(rand.NewSource(time.Now().UnixNano()))
	},
	usecase.NewAdminAuth,
	usecase.NewAnalysisUseCase,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRedeemUseCase,
		commands.NewAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCodeQueries,
	),
)
