package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/reactorml/reactorserve/internal/config"
	"github.com/reactorml/reactorserve/internal/onnx"
)

var (
	router *gin.Engine
	once   sync.Once
)

// Init builds the gin engine and registers all routes. The session is the
// process-wide model handle shared read-only by every request.
func Init(configs config.Configs, session onnx.Session) {
	once.Do(func() {
		env := configs.AppEnv
		if env == "prod" || env == "production" {
			gin.SetMode(gin.ReleaseMode)
		}
		router = gin.New()

		router.Use(gin.Recovery())
		router.Use(MetricsMiddleware())

		router.GET("/health/self", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "true"})
		})

		RegisterRoutes(router, onnx.NewInvoker(session))
	})
}

func Instance() *gin.Engine {
	if router == nil {
		log.Fatal().Msg("Router not initialized")
	}
	return router
}
