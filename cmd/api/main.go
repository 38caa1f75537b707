package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/healthone/clinic-api/config"
	adminhandler "github.com/healthone/clinic-api/internal/handler/admin"
	appointmenthandler "github.com/healthone/clinic-api/internal/handler/appointment"
	authhandler "github.com/healthone/clinic-api/internal/handler/auth"
	billinghandler "github.com/healthone/clinic-api/internal/handler/billing"
	clinichandler "github.com/healthone/clinic-api/internal/handler/clinic"
	communicationhandler "github.com/healthone/clinic-api/internal/handler/communication"
	consultationhandler "github.com/healthone/clinic-api/internal/handler/consultation"
	"github.com/healthone/clinic-api/internal/handler/health"
	labtesthandler "github.com/healthone/clinic-api/internal/handler/labtest"
	medicationhandler "github.com/healthone/clinic-api/internal/handler/medication"
	patienthandler "github.com/healthone/clinic-api/internal/handler/patient"
	prescriptionhandler "github.com/healthone/clinic-api/internal/handler/prescription"
	"github.com/healthone/clinic-api/internal/handler/prometheus"
	recordhandler "github.com/healthone/clinic-api/internal/handler/record"
	vitalshandler "github.com/healthone/clinic-api/internal/handler/vitals"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/repository"
	"github.com/healthone/clinic-api/internal/repository/memory"
	"github.com/healthone/clinic-api/internal/repository/postgres"
	"github.com/healthone/clinic-api/internal/router"
	"github.com/healthone/clinic-api/internal/service/account"
	"github.com/healthone/clinic-api/internal/service/appointment"
	authService "github.com/healthone/clinic-api/internal/service/auth"
	"github.com/healthone/clinic-api/internal/service/billing"
	"github.com/healthone/clinic-api/internal/service/communication"
	"github.com/healthone/clinic-api/internal/service/consultation"
	"github.com/healthone/clinic-api/internal/service/credential"
	"github.com/healthone/clinic-api/internal/service/labtest"
	"github.com/healthone/clinic-api/internal/service/medication"
	"github.com/healthone/clinic-api/internal/service/prescription"
	"github.com/healthone/clinic-api/internal/service/record"
	"github.com/healthone/clinic-api/internal/service/vitals"
	"github.com/healthone/clinic-api/pkg/auth"
	"github.com/healthone/clinic-api/pkg/logger"
	"github.com/healthone/clinic-api/pkg/metrics"
	"github.com/healthone/clinic-api/pkg/security"
	"github.com/healthone/clinic-api/pkg/validator"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-api",
		Short: "Health-One clinic API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrations need the postgres driver, got %q", cfg.Database.Driver)
			}

			ctx := cmd.Context()
			db, err := postgres.NewDB(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := postgres.NewMigrator(db, postgres.Migrations()).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			for _, name := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) successfully.\n", len(applied))
			return nil
		},
	})
	return cmd
}

func runServer(cfg *config.Config) error {
	logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validator.RegisterGin(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New("healthone")

	// Initialize storage
	store, closeStore, err := openStore(ctx, cfg, m)
	if err != nil {
		return err
	}
	defer closeStore()

	revocations, closeRevocations, err := openRevocations(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRevocations()

	tokens, err := auth.NewTokenManager(auth.Config{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		return err
	}

	// Initialize services
	credentials := credential.NewService(store, security.NewBcryptHasher(cfg.Auth.BcryptCost))
	authSvc := authService.NewService(credentials, tokens, revocations, m)
	accountSvc := account.NewService(store, credentials)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokens, revocations, cfg.Auth.Strict())

	// Initialize handlers
	handlers := router.Handlers{
		Auth:    authhandler.NewHandler(authSvc, authMiddleware),
		Health:  health.NewHandler(store.Health),
		Metrics: prometheus.New(m),
		Resources: []router.Resource{
			{Handler: patienthandler.NewHandler(accountSvc)},
			{Handler: clinichandler.NewHandler(accountSvc)},
			{Handler: adminhandler.NewHandler(accountSvc)},
			{Name: "appointment", Handler: appointmenthandler.NewHandler(appointment.NewService(store.Appointments))},
			{Name: "consultation", Handler: consultationhandler.NewHandler(consultation.NewService(store.Consultations))},
			{Name: "prescription", Handler: prescriptionhandler.NewHandler(prescription.NewService(store.Prescriptions))},
			{Name: "lab_test", Handler: labtesthandler.NewHandler(labtest.NewService(store.LabTests))},
			{Name: "vitals", Handler: vitalshandler.NewHandler(vitals.NewService(store.Vitals))},
			{Name: "medication_log", Handler: medicationhandler.NewHandler(medication.NewService(store.MedicationLogs))},
			{Name: "billing", Handler: billinghandler.NewHandler(billing.NewService(store.Billing))},
			{Name: "communication", Handler: communicationhandler.NewHandler(communication.NewService(store.Communications), authMiddleware)},
			{Name: "patient_record", Handler: recordhandler.NewHandler(record.NewService(store.PatientRecords, store.Patients))},
		},
	}

	routerConfig := router.RouterConfig{
		AllowOrigins:   cfg.CORS.AllowOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		RequestTimeout: cfg.Server.WriteTimeout,
		Security:       middleware.DefaultSecurityConfig(),
	}
	if cfg.RateLimit.Enabled {
		routerConfig.AuthRateLimit = &middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RPS),
			Burst: cfg.RateLimit.Burst,
		}
	}

	// Setup router
	r := router.NewRouter(authMiddleware, handlers, routerConfig)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Int("port", cfg.Server.Port).
			Str("driver", cfg.Database.Driver).
			Str("auth_mode", cfg.Auth.Mode).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited")
	return nil
}

// openStore selects the storage backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (repository.Store, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		return memory.NewStore().Repositories(), func() {}, nil
	}

	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return repository.Store{}, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := m.RegisterDBStats(db.DB, cfg.Database.Name); err != nil {
		log.Warn().Err(err).Msg("failed to register database metrics")
	}

	return postgres.NewStore(db), func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}, nil
}

func openRevocations(ctx context.Context, cfg *config.Config) (auth.RevocationStore, func(), error) {
	if cfg.Revocation.Backend != config.RevocationRedis {
		return auth.NewMemoryRevocationStore(time.Minute), func() {}, nil
	}

	client, err := auth.NewRedisClient(ctx, cfg.Revocation.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return auth.NewRedisRevocationStore(client), closer(client), nil
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close connection")
		}
	}
}
