package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"heritage-server/internal/config"
	"heritage-server/internal/managers"
	"heritage-server/internal/migrations"
	"heritage-server/internal/repositories"
	"heritage-server/internal/routing"
	"heritage-server/internal/utils"
)

func Init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("error loading configuration: ", err)
	}

	setLogLevel(cfg.LogLevel)
	utils.SetServiceName(cfg.ServiceName)

	if err := utils.ConfigureEmailVerification(cfg.Validation.VerifyEmailMX, cfg.Validation.VerifierEmail); err != nil {
		log.Fatal("error configuring email verification: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool := initializeDatabase(ctx, cfg.Database)
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := migrations.Up(pool); err != nil {
			log.Fatal("error migrating database: ", err)
		}
	}

	jwtMgr, err := managers.NewJWTManagerFromConfig(cfg.Auth)
	if err != nil {
		log.Fatal("error initializing JWT manager: ", err)
	}

	storageMgr, err := managers.NewStorageManager(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("error initializing storage: ", err)
	}

	deps := &routing.Dependencies{
		DatabaseMgr:     managers.NewDatabaseManager(pool),
		JWTMgr:          jwtMgr,
		PasswordMgr:     managers.NewPasswordManager(),
		VerificationMgr: managers.NewVerificationManager(cfg.Auth.VerificationTokenLifetime),
		MailMgr:         managers.NewMailManager(cfg.Mail, cfg.IsProduction()),
		StorageMgr:      storageMgr,
		RateLimitMgr:    managers.NewRateLimitManager(cfg.Redis),
		Accounts:        repositories.NewAccountRepository(pool),
		Posts:           repositories.NewPostRepository(pool),
		Events:          repositories.NewEventRepository(pool),
	}

	r := routing.InitRouter(cfg, deps)
	log.Info("Initialized router")

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Starting server on %s...", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Error starting server: ", err)
		}
	}()

	<-ctx.Done()
	log.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down server: ", err)
	}
}

func initializeDatabase(ctx context.Context, cfg config.Database) *pgxpool.Pool {
	log.Info("Initializing database")

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		log.Fatal("error configuring database: ", err)
	}

	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("error connecting to database: ", err)
	}
	log.Info("Connected to database")
	return pool
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)

	log.SetOutput(os.Stdout)
}
