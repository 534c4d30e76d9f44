package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// RouteRegistrar is implemented by every resource handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterConfig struct {
	ServiceName string
	Debug       bool
}

// NewRouter mounts the handlers under /v1 behind the request id, logging,
// recovery and tracing middleware. /health reports database reachability.
func NewRouter(cfg RouterConfig, log logger.ZapLogger, db Pinger, handlers ...RouteRegistrar) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		RequestIDMiddleware(),
		LoggerMiddleware(log),
		RecoveryMiddleware(log),
		otelgin.Middleware(cfg.ServiceName),
	)

	r.GET("/health", health(log, db))

	v1 := r.Group("/v1")
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Envelope{Status: StatusError, Message: "route not found"})
	})

	return r
}

func health(log logger.ZapLogger, db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, Envelope{Status: StatusError, Message: "database unavailable"})
			return
		}
		OK(c, "ok", gin.H{"database": "up"})
	}
}
