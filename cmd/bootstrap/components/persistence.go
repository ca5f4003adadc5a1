package components

import (
	"hall-booking/internal/infra/readstore"
	"hall-booking/internal/infra/sqldb"
	"hall-booking/internal/infra/uow"
	"hall-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewHallReadStore,
			fx.As(new(queries.HallReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			readstore.NewRecordReadStore,
			fx.As(new(queries.RecordReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) sqldb.DBTX {
	return pool
}
