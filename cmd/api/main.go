package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	httpadapter "clubhouse/internal/adapters/http"
	"clubhouse/internal/application"
	"clubhouse/internal/clock"
	"clubhouse/internal/config"
	"clubhouse/internal/infrastructure/database"
	"clubhouse/internal/infrastructure/i18n"
	"clubhouse/internal/infrastructure/messaging"
	"clubhouse/internal/infrastructure/security"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/ports/output"
	"clubhouse/pkg/tz"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := cfg.NewLogger("api")

	if err := run(cfg, &logger); err != nil {
		logger.Fatal().Err(err).Msg("api stopped")
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateAPI(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, logger *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := tz.Load(cfg.ClubTimezone)
	if err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	db := database.NewDB(pool, cfg.DBTimeout)
	customerRepo := database.NewCustomerRepository(db)
	eventRepo := database.NewEventRepository(db)
	adminRepo := database.NewAdminRepository(db)
	happyHourRepo := database.NewHappyHourRepository(db)

	var publisher output.RegistrationPublisher = messaging.NopPublisher{}
	if cfg.AMQPURL != "" {
		client, err := messaging.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		publisher = client
	} else {
		logger.Warn().Msg("AMQP_URL not set, registration messages are not published")
	}

	clk := clock.NewSystem()
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	events := application.NewEventService(eventRepo, customerRepo, hasher, clk)
	customers := application.NewCustomerService(customerRepo, eventRepo)
	registrations := application.NewRegistrationService(eventRepo, customerRepo, customers, hasher, publisher, clk, logger)
	admins := application.NewAdminService(adminRepo, hasher, tokens, clk, logger)
	happyHours := application.NewHappyHourService(happyHourRepo, clk, loc)

	if err := admins.Bootstrap(ctx, input.RegisterAdmin{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}); err != nil {
		return err
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	handler := httpadapter.NewHandler(events, registrations, customers, admins, happyHours, translator, clk, logger)

	gin.SetMode(gin.ReleaseMode)
	router := httpadapter.NewRouter(handler, httpadapter.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		Ping:        pool.Ping,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
