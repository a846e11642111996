package components

import (
	"tipi-reserve/internal/handler"
	"tipi-reserve/internal/handler/api"
	"tipi-reserve/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewStockHandler,
		api.NewAuthHandler,
		api.NewAdminHandler,
		api.NewQRHandler,
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
