package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/berberbook/saloniumpro/internal/config"
	dbpkg "github.com/berberbook/saloniumpro/internal/db"
	"github.com/berberbook/saloniumpro/internal/logger"
	"github.com/berberbook/saloniumpro/internal/metrics"
	"github.com/berberbook/saloniumpro/internal/middleware"
	"github.com/berberbook/saloniumpro/internal/routes"
)

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, cfg)

	zap.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
