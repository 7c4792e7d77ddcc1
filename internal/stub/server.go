package stub

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/warefy/supply-chain-client/internal/core/domain"
)

// Options configures the stub backend router.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

type server struct {
	store  *Store
	tokens *tokenIssuer
	log    zerolog.Logger
}

// NewRouter builds the Echo instance serving the backend's REST contract
// from store.
func NewRouter(store *Store, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))

	s := &server{store: store, tokens: newTokenIssuer(opts.JWTSecret, opts.TokenTTL), log: opts.Logger}
	authed := Auth(s.tokens)
	adminOnly := RBAC(domain.RoleAdmin)

	// --- Probes (no auth required) ---
	e.GET("/health", s.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)
	api.GET("/auth/me", s.me, authed)

	// --- Users (admin) ---
	users := api.Group("/users", authed, adminOnly)
	users.GET("", s.listUsers)
	users.GET("/audit/logs", s.auditLogs)
	users.GET("/:id", s.getUser)
	users.PATCH("/:id", s.updateUser)
	users.GET("/:id/usage", s.userUsage)

	// --- Inventory ---
	inv := api.Group("/inventory", authed)
	inv.GET("", s.listInventory)
	inv.POST("", s.createInventory)
	inv.GET("/warehouse/:id/summary", s.warehouseSummary)
	inv.GET("/:id", s.getInventory)
	inv.PUT("/:id", s.updateInventory)
	inv.DELETE("/:id", s.deleteInventory)

	// --- Warehouses ---
	wh := api.Group("/warehouses", authed)
	wh.GET("", s.listWarehouses)
	wh.POST("", s.createWarehouse)
	wh.GET("/:id", s.getWarehouse)
	wh.PATCH("/:id/layout", s.updateLayout)

	// --- Vehicles ---
	veh := api.Group("/vehicles", authed)
	veh.GET("", s.listVehicles)
	veh.POST("", s.createVehicle)
	veh.GET("/:id", s.getVehicle)

	// --- Anomalies ---
	an := api.Group("/anomalies", authed)
	an.GET("/recent", s.recentAnomalies)
	an.PUT("/:id/resolve", s.resolveAnomaly)

	// --- AI ---
	api.POST("/ai/command", s.aiCommand, authed)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func (s *server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Health{
		Status:    "healthy",
		Database:  "in-memory",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
