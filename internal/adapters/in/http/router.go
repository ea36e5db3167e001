package http

import (
	"log/slog"
	"net/http"

	"freshdispatch/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RealtimePath is where courier and customer apps open their websocket.
const RealtimePath = "/ws"

type RouterConfig struct {
	Server api.ServerInterface
	// Realtime serves websocket upgrades; the route is omitted when nil.
	Realtime http.Handler
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewRouter assembles the echo instance: the API behind request validation,
// plus health, metrics, swagger and the realtime endpoint.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(Metrics())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Realtime != nil {
		e.GET(RealtimePath, echo.WrapHandler(cfg.Realtime))
	}

	api.RegisterHandlers(e, cfg.Server)

	return e, nil
}
