package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doener-shop/config"
	_ "doener-shop/docs"
	"doener-shop/libs"
	"doener-shop/routes"

	"github.com/gin-gonic/gin"
)

// @title Döner Shop API
// @version 1.0
// @description Ordering backend for a döner and pizza restaurant: menu, cart, item configurator, checkout via WhatsApp and the admin order history.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	envFound := config.LoadConfig()
	cfg := config.AppConfig

	libs.InitLogger(cfg.AppEnv, cfg.LogLevel)
	logger := libs.Logger
	if !envFound {
		logger.Info("No .env file found, using environment variables")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	deps := routes.Bootstrap(context.Background(), cfg, logger)
	defer config.CloseDB()
	defer config.CloseRedis()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.NewRouter(deps),
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		logger.Infof("Environment: %s", cfg.AppEnv)
		logger.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}
	deps.Runner.Wait()
}
