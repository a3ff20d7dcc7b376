package handlers

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-reservations/internal/handlers/common"
	"github.com/Jeomhps/hotel-reservations/internal/handlers/reservations"
	"github.com/Jeomhps/hotel-reservations/internal/middleware"
	"github.com/Jeomhps/hotel-reservations/internal/store"
)

type RouterConfig struct {
	MaxBodyBytes       int64
	CORSAllowedOrigins []string

	// APIDocs is served at /api-docs when set.
	APIDocs *openapi3.T
}

// NewRouter builds the gin engine serving the reservation API on top of s.
func NewRouter(cfg RouterConfig, l *zap.Logger, s *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(l))
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		l.Error("panic recovered", zap.Any("error", err), zap.String("request_id", middleware.GetRequestID(c)))
		common.Message(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	}))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	r.NoRoute(func(c *gin.Context) { common.Message(c, http.StatusNotFound, "Not found") })

	// Public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "reservations": s.Len()})
	})
	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "Server is running") })
	if cfg.APIDocs != nil {
		r.GET("/api-docs", func(c *gin.Context) { c.JSON(http.StatusOK, cfg.APIDocs) })
	}

	reservations.NewHandler(s, l).Register(r)

	return r
}
