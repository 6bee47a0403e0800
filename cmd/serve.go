package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dentalflow-backend/auth"
	"dentalflow-backend/config"
	"dentalflow-backend/controllers"
	"dentalflow-backend/database"
	"dentalflow-backend/logger"
	"dentalflow-backend/middlewares"
	"dentalflow-backend/repositories"
	"dentalflow-backend/routes"
	"dentalflow-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Example: `  # Serve on PORT (default 8080), migrating first when AUTO_MIGRATE=true
  dentalflow serve

  # Skip migrations regardless of AUTO_MIGRATE
  dentalflow serve --skip-migrate`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("skip-migrate", false, "Do not run schema migrations on startup")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.WithComponent("server")

	skipMigrate, _ := cmd.Flags().GetBool("skip-migrate")
	shutdownTimeout, _ := cmd.Flags().GetDuration("shutdown-timeout")

	db, err := database.Connect(cfg.DSN(), logger.WithComponent("gorm"))
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.AutoMigrate && !skipMigrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info().Msg("Database migrated")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := newApp(cfg, db, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("auth_mode", cfg.AuthMode).Msg("API server starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newApp builds the Fiber app with every repository, service and controller wired.
func newApp(cfg *config.Config, db *gorm.DB, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             cfg.BodyLimitBytes(),
		DisableStartupMessage: !cfg.IsDev(),
	})

	metrics := middlewares.NewMetrics(reg)

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(metrics.Handler())
	app.Use(middlewares.RequestLogger(logger.WithComponent("http")))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: false, // bearer tokens, no cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/metrics") || c.Path() == "/healthz"
		},
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// ---- Repositories
	patientRepo := repositories.NewPatientRepository(db)
	dentistRepo := repositories.NewDentistRepository(db)
	caseRepo := repositories.NewCaseRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// ---- Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	authSvc := services.NewAuthService(userRepo, tokens, 0)

	handlers := routes.Handlers{
		Auth:     controllers.NewAuthController(authSvc),
		Patients: controllers.NewPatientController(services.NewPatientService(patientRepo, dentistRepo)),
		Dentists: controllers.NewDentistController(services.NewDentistService(dentistRepo)),
		Appointments: controllers.NewAppointmentController(services.NewAppointmentService(
			repositories.NewAppointmentRepository(db), patientRepo, dentistRepo, caseRepo)),
		Cases: controllers.NewCaseController(services.NewCaseService(caseRepo, patientRepo, dentistRepo, nil)),
		Invoices: controllers.NewInvoiceController(services.NewInvoiceService(
			invoiceRepo, patientRepo, dentistRepo, caseRepo, nil)),
		Inventory: controllers.NewInventoryController(services.NewInventoryService(
			repositories.NewInventoryRepository(db),
			repositories.NewCategoryRepository(db),
			repositories.NewSupplierRepository(db))),
		Messages: controllers.NewMessageController(services.NewMessageService(
			repositories.NewMessageRepository(db), repositories.NewContactRepository(db))),
		Reports: controllers.NewReportController(services.NewReportService(repositories.NewReportRepository(db), nil)),
		Health: controllers.NewHealthController(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
	}

	routes.Register(app, handlers, routes.Guards{
		Authenticate: middlewares.Authenticate(tokens, authSvc, cfg.AuthMode),
		Idempotency:  middlewares.Idempotency(db),
		Transaction:  middlewares.RequestTx(db),
	})
	return app
}
