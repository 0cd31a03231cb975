package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/quicktask-analytics/internal/config"
	v1 "github.com/adanyl0v/quicktask-analytics/internal/delivery/http/v1"
	"github.com/adanyl0v/quicktask-analytics/internal/services"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
)

func NewRouter(logger zerolog.Logger, cfg *config.Config, store storage.TaskStore) *gin.Engine {
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	analyticsService := services.NewAnalyticsService(logger, store)
	v1Handler := v1.New(logger, analyticsService)

	router := gin.New()
	router.Use(v1Handler.HandleRequestID)
	router.Use(v1Handler.HandleAccessLog)
	router.Use(gin.Recovery())
	// Credentialed requests cannot use a wildcard origin; echo it instead.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
	}))

	v1.RegisterRoutes(router, v1Handler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

func MustListenAndServeHTTP(logger zerolog.Logger, cfg *config.Config, store storage.TaskStore) {
	httpCfg := cfg.HTTP

	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:           NewRouter(logger, cfg, store),
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}

	go func() {
		logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	logger.Info().Msg("shut down http server")
}
