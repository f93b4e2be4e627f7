package api

import (
	"context"
	"net/http"
	"sync"

	"doener-shop/config"
	"doener-shop/libs"
	"doener-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		libs.InitLogger(config.AppConfig.AppEnv, config.AppConfig.LogLevel)

		deps := routes.Bootstrap(context.Background(), config.AppConfig, libs.Logger)
		router = routes.NewRouter(deps)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
