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

	"github.com/wizardXds/medicare/internal/config"
	"github.com/wizardXds/medicare/internal/email"
	apptHandler "github.com/wizardXds/medicare/internal/handler/appointment"
	authHandler "github.com/wizardXds/medicare/internal/handler/auth"
	"github.com/wizardXds/medicare/internal/handler/health"
	hospitalHandler "github.com/wizardXds/medicare/internal/handler/hospital"
	messageHandler "github.com/wizardXds/medicare/internal/handler/message"
	paymentHandler "github.com/wizardXds/medicare/internal/handler/payment"
	prescriptionHandler "github.com/wizardXds/medicare/internal/handler/prescription"
	promHandler "github.com/wizardXds/medicare/internal/handler/prometheus"
	recordHandler "github.com/wizardXds/medicare/internal/handler/record"
	userHandler "github.com/wizardXds/medicare/internal/handler/user"
	"github.com/wizardXds/medicare/internal/middleware"
	"github.com/wizardXds/medicare/internal/repository"
	"github.com/wizardXds/medicare/internal/repository/memory"
	"github.com/wizardXds/medicare/internal/repository/postgres"
	"github.com/wizardXds/medicare/internal/router"
	"github.com/wizardXds/medicare/internal/seed"
	apptService "github.com/wizardXds/medicare/internal/service/appointment"
	authService "github.com/wizardXds/medicare/internal/service/auth"
	eventService "github.com/wizardXds/medicare/internal/service/event"
	hospitalService "github.com/wizardXds/medicare/internal/service/hospital"
	messageService "github.com/wizardXds/medicare/internal/service/message"
	paymentService "github.com/wizardXds/medicare/internal/service/payment"
	prescriptionService "github.com/wizardXds/medicare/internal/service/prescription"
	recordService "github.com/wizardXds/medicare/internal/service/record"
	userService "github.com/wizardXds/medicare/internal/service/user"
	"github.com/wizardXds/medicare/pkg/auth"
	"github.com/wizardXds/medicare/pkg/logger"
	"github.com/wizardXds/medicare/pkg/messaging"
	redisBroker "github.com/wizardXds/medicare/pkg/messaging/redis"
	"github.com/wizardXds/medicare/pkg/metrics"
	"github.com/wizardXds/medicare/pkg/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Storage backend
	var (
		store  repository.Store
		pinger health.Pinger
	)
	switch cfg.Store.Driver {
	case "postgres":
		db, err := postgres.NewDB(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		store = postgres.NewStore(db)
		pinger = db
	default:
		store = memory.NewStore()
	}

	// Event broker
	var broker messaging.Broker = messaging.NopBroker{}
	if cfg.Redis.Enabled {
		b, err := redisBroker.NewBroker(redisBroker.Config{URL: cfg.Redis.URL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer b.Close()
		broker = b
	}

	prom := promHandler.New()
	m := metrics.New(prom.Registry(), "medicare")
	events := eventService.NewPublisher(broker, m)

	var emails email.Service = email.NopService{}
	if cfg.SMTP.Enabled {
		emails = email.NewSMTPService(cfg.SMTP, m)
	}

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.Secret, time.Duration(cfg.Auth.ExpiryHours)*time.Hour)

	if cfg.Seed {
		if err := seed.Run(context.Background(), store, hasher); err != nil {
			log.Fatal().Err(err).Msg("failed to seed starter data")
		}
	}

	// Services
	userSvc := userService.NewService(store.Users())
	hospitalSvc := hospitalService.NewService(store.Hospitals(), events)
	apptSvc := apptService.NewService(store.Appointments(), store.Users(), events, emails)
	recordSvc := recordService.NewService(store.MedicalRecords(), events)
	prescriptionSvc := prescriptionService.NewService(store.Prescriptions(), events)
	messageSvc := messageService.NewService(store.Messages(), events)
	paymentSvc := paymentService.NewService(store.Payments(), events)
	authSvc := authService.NewService(store.Users(), jwtSvc, hasher, events)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	r := router.New(router.Handlers{
		User:         userHandler.NewHandler(userSvc),
		Hospital:     hospitalHandler.NewHandler(hospitalSvc),
		Appointment:  apptHandler.NewHandler(apptSvc),
		Record:       recordHandler.NewHandler(recordSvc),
		Prescription: prescriptionHandler.NewHandler(prescriptionSvc),
		Message:      messageHandler.NewHandler(messageSvc),
		Payment:      paymentHandler.NewHandler(paymentSvc),
		Auth:         authHandler.NewHandler(authSvc),
		Health:       health.NewHandler(pinger),
		Prometheus:   prom,
	}, authMw, router.Config{
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Timeout:        time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CacheEnabled:   cfg.Cache.Enabled,
		CacheTTL:       time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		CORS:           middleware.DefaultCORSConfig(),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("store", cfg.Store.Driver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
