package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tipi-reserve/internal/handler/api"
	"tipi-reserve/internal/handler/middleware"
	"tipi-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	stockHandler *api.StockHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	qrHandler *api.QRHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, stockHandler, authHandler, adminHandler, qrHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	stockHandler *api.StockHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	qrHandler *api.QRHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/stock", Handler: stockHandler.Remaining},
			{Method: http.MethodGet, Path: "/qr", Handler: qrHandler.PaymentQR},
		})

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/cancel", Handler: bookingHandler.CancelByToken},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			gated := admin.Group("")
			gated.Use(adminMiddleware.RequireAdmin())
			addRoutes(gated, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: adminHandler.ListBookings},
				{Method: http.MethodGet, Path: "/reservations/export", Handler: adminHandler.ExportCSV},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: adminHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/reservations/:id", Handler: adminHandler.PatchBooking},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: adminHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/purge-cancelled", Handler: adminHandler.PurgePreview},
				{Method: http.MethodPost, Path: "/purge-cancelled", Handler: adminHandler.PurgeExecute},
				{Method: http.MethodPost, Path: "/stock/reset", Handler: adminHandler.ResetAllStock},
				{Method: http.MethodPost, Path: "/stock/recount", Handler: adminHandler.RecountStock},
				{Method: http.MethodPost, Path: "/stock/:id/reset", Handler: adminHandler.ResetStock},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
