package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/healthtrack-api/internal/config"
	"github.com/jwalitptl/healthtrack-api/internal/handler"
	authHandler "github.com/jwalitptl/healthtrack-api/internal/handler/auth"
	bmiHandler "github.com/jwalitptl/healthtrack-api/internal/handler/bmi"
	newsHandler "github.com/jwalitptl/healthtrack-api/internal/handler/news"
	profileHandler "github.com/jwalitptl/healthtrack-api/internal/handler/profile"
	recHandler "github.com/jwalitptl/healthtrack-api/internal/handler/recommendation"
	trackingHandler "github.com/jwalitptl/healthtrack-api/internal/handler/tracking"
	"github.com/jwalitptl/healthtrack-api/internal/middleware"
	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/repository/postgres"
	"github.com/jwalitptl/healthtrack-api/internal/router"
	authService "github.com/jwalitptl/healthtrack-api/internal/service/auth"
	bmiService "github.com/jwalitptl/healthtrack-api/internal/service/bmi"
	newsService "github.com/jwalitptl/healthtrack-api/internal/service/news"
	profileService "github.com/jwalitptl/healthtrack-api/internal/service/profile"
	recService "github.com/jwalitptl/healthtrack-api/internal/service/recommendation"
	trackingService "github.com/jwalitptl/healthtrack-api/internal/service/tracking"
	"github.com/jwalitptl/healthtrack-api/internal/store"
	"github.com/jwalitptl/healthtrack-api/pkg/auth"
	"github.com/jwalitptl/healthtrack-api/pkg/logger"
	"github.com/jwalitptl/healthtrack-api/pkg/metrics"
	"github.com/jwalitptl/healthtrack-api/pkg/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Server.LogLevel)

	if err := model.RegisterValidations(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validations")
	}

	m := metrics.NewMetrics("healthtrack", "api")

	// Open the store and bring the schema up to date
	st, err := store.Open(cfg.Database, m)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	// Session revocation set
	revoker, err := session.NewRevoker(session.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer revoker.Close()

	// Repositories
	base := postgres.NewBaseRepository(st)
	accountRepo := postgres.NewAccountRepository(base)
	healthProfileRepo := postgres.NewHealthProfileRepository(base)
	bmiRepo := postgres.NewBMIRecordRepository(base)
	trackingRepo := postgres.NewTrackingRecordRepository(base)
	imageRepo := postgres.NewProfileImageRepository(base)

	// Services
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	authSvc := authService.NewService(accountRepo, jwtSvc, revoker, m)
	profileSvc := profileService.NewService(healthProfileRepo, imageRepo)
	bmiSvc := bmiService.NewService(bmiRepo)
	trackingSvc := trackingService.NewService(trackingRepo)
	recSvc := recService.NewService(healthProfileRepo, bmiRepo)
	newsSvc := newsService.NewService(cfg.News, m)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	profileH := profileHandler.NewHandler(profileSvc, recSvc)
	bmiH := bmiHandler.NewHandler(bmiSvc, recSvc)
	trackingH := trackingHandler.NewHandler(trackingSvc)
	recH := recHandler.NewHandler(recSvc)
	newsH := newsHandler.NewHandler(newsSvc)

	r := router.NewRouter(
		authMiddleware,
		authH,
		profileH,
		bmiH,
		trackingH,
		recH,
		newsH,
		h,
		router.RouterConfig{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "healthtrack",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
