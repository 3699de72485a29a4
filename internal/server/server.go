package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/skyreport/skyreport/internal/config"
	"github.com/skyreport/skyreport/internal/server/handlers"
	"github.com/skyreport/skyreport/internal/server/middlewares"
	"github.com/skyreport/skyreport/internal/weather"
	"github.com/skyreport/skyreport/pkg/telemetry"
)

type Server struct {
	engine   *gin.Engine
	server   *http.Server
	provider weather.Provider
	logger   *zap.Logger
	tele     *telemetry.Telemetry
}

func NewServer(provider weather.Provider, logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middlewares.RequestIDMiddleware())
	engine.Use(middlewares.LoggingMiddleware(logger))
	engine.Use(middlewares.RecoveryMiddleware(logger, true))
	engine.Use(middlewares.TelemetryMiddleware(tele))
	engine.Use(middlewares.MetricsMiddleware())

	s := &Server{
		engine:   engine,
		provider: provider,
		logger:   logger,
		tele:     tele,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Business endpoint
	s.engine.GET("/weather", handlers.NewWeatherHandler(s.provider, s.logger).GetWeather)

	// Health endpoints (Kubernetes friendly)
	health := handlers.NewHealthHandler(s.logger)
	s.engine.GET("/health", health.Health)
	s.engine.GET("/health/live", health.Liveness)
	s.engine.GET("/health/ready", health.Readiness)

	// Monitoring
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) Start() error {
	cfg := config.GetConfig()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
