package bootstrap

import (
	"hall-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MQModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
