package bootstrap

import (
	"auction-house/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	HouseModule,
	components.UseCaseModule,
	components.HandlerModule,
)
