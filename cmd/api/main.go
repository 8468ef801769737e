package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-desk/internal/cache"
	"github.com/BruksfildServices01/appointment-desk/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-desk/internal/db"
	"github.com/BruksfildServices01/appointment-desk/internal/middleware"
	"github.com/BruksfildServices01/appointment-desk/internal/routes"
	"github.com/BruksfildServices01/appointment-desk/pkg/logging"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	var c cache.Cache = cache.NewNoop()
	if redisCache, err := cache.NewRedis(cfg.RedisURL); err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if pingErr := redisCache.Ping(ctx); pingErr == nil {
			c = redisCache
		} else {
			logger.Warn("redis unreachable, dashboard cache disabled", "error", pingErr)
		}
		cancel()
	} else {
		logger.Warn("invalid REDIS_URL, dashboard cache disabled", "error", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, c, logger)

	logger.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
