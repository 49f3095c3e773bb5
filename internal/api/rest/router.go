package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/oshokin/alarm-stats/docs" // Registers the generated OpenAPI document.
)

// Option configures the router.
type Option func(*routerOptions)

// routerOptions holds optional router collaborators.
type routerOptions struct {
	// metricsHandler serves /metrics.
	metricsHandler http.Handler
	// swagger enables the Swagger UI.
	swagger bool
}

// WithMetricsHandler replaces the default Prometheus handler.
func WithMetricsHandler(h http.Handler) Option {
	return func(o *routerOptions) {
		if h != nil {
			o.metricsHandler = h
		}
	}
}

// WithoutSwagger disables the Swagger UI route.
func WithoutSwagger() Option {
	return func(o *routerOptions) {
		o.swagger = false
	}
}

// NewRouter builds the gin engine serving the alarm API.
func NewRouter(service Service, opts ...Option) *gin.Engine {
	options := &routerOptions{
		metricsHandler: promhttp.Handler(),
		swagger:        true,
	}

	for _, opt := range opts {
		opt(options)
	}

	router := gin.New()
	router.Use(RequestContext(), AccessLog(), Recovery())

	h := NewHandler(service)

	// Paths match the published API, mixed casing included.
	router.GET("/alarms", h.ListAlarms)
	router.GET("/alarmLog", h.ListAlarmLog)
	router.GET("/act_per_alarm", h.ActivationsPerAlarm)
	router.GET("/act_per_station", h.ActivationsPerStation)
	router.GET("/status", h.Status)

	router.GET("/export/activations.xlsx", h.ExportActivations)
	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(options.metricsHandler))

	if options.swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}
