package http

import (
	"net/http"

	"salesorders/internal/generated/servers"
	"salesorders/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
)

// NewRouter assembles the echo instance: middleware, the API routes of
// server, health, metrics and Swagger UI.
func NewRouter(server *Server, doc *openapi3.T, log *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	validator, err := NewOpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e.Use(middleware.Recover())
	e.Use(RequestLogger(log))
	e.Use(Metrics())
	e.Use(validator)

	e.GET(healthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(metricsPath, echo.WrapHandler(metrics.Handler()))

	if err := RegisterSwagger(e, doc); err != nil {
		return nil, err
	}

	servers.RegisterHandlers(e, server)

	return e, nil
}
