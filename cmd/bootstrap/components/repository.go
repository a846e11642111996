package components

import (
	"tipi-reserve/internal/infra/cache"
	"tipi-reserve/internal/infra/db"
	"tipi-reserve/internal/infra/notify"
	"tipi-reserve/internal/infra/readstore"
	"tipi-reserve/internal/infra/uow"
	"tipi-reserve/internal/pkg/config"
	"tipi-reserve/internal/usecase/queries"
	"tipi-reserve/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		NewStockComponents,
		NewNotificationSender,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewStockComponents wires the redis cache in front of the durable stock
// read store. With no redis address configured, the cache degrades to a
// pass-through and invalidation becomes a no-op.
func NewStockComponents(pool *pgxpool.Pool, cfg config.Config) (queries.StockReadStore, shared.StockCache) {
	base := readstore.NewLodgingReadStore(pool)
	stockCache := cache.NewStockCache(cache.NewRedisClient(cfg.Redis.Addr), base, cfg.Redis.StockTTL)
	return stockCache, stockCache
}

func NewNotificationSender(cfg config.Config) shared.NotificationSender {
	if cfg.AMQP.URL == "" {
		return notify.NewLogSender()
	}
	return notify.NewAMQPSender(cfg.AMQP.URL)
}
