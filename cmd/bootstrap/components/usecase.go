package components

import (
	"auction-house/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewMarketUseCase,
	),
)
