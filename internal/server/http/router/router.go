package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/userservice/internal/config"
	"github.com/polkiloo/userservice/internal/metrics"
	"github.com/polkiloo/userservice/internal/server/http/handlers"
	"github.com/polkiloo/userservice/internal/server/http/middleware"
)

// Params lists the dependencies of the HTTP router.
type Params struct {
	fx.In

	Facade    handlers.UserFacade
	Health    handlers.HealthFacade
	Validator handlers.RequestValidator
	Logger    *slog.Logger
	Config    *config.Config
	Metrics   *metrics.Metrics
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	if len(p.Config.CORSAllowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:  p.Config.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Content-Encoding", "Accept-Encoding", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(p.Facade, p.Validator)
	healthHandler := handlers.NewHealthHandler(p.Health)

	users := engine.Group("/api/users")
	users.GET("", userHandler.List)
	users.GET("/username/:username", userHandler.GetByUsername)
	users.GET("/email/:email", userHandler.GetByEmail)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	engine.GET("/health", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	return engine
}
