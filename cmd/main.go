package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/arvyax/wellness-sessions/internal/handlers"
	"github.com/arvyax/wellness-sessions/internal/jwt"
	"github.com/arvyax/wellness-sessions/internal/logger"
	"github.com/arvyax/wellness-sessions/internal/mailer"
	"github.com/arvyax/wellness-sessions/internal/middlewares"
	"github.com/arvyax/wellness-sessions/internal/migrations"
	"github.com/arvyax/wellness-sessions/internal/repositories"
	"github.com/arvyax/wellness-sessions/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title wellness-sessions API
// @version 1.0.0
// @description Service for authoring and publishing wellness sessions
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application settings loaded from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisAddr     string
	redisPassword string
	redisDB       int

	jwtSecretKey        string
	jwtExpSecond        int
	resetTokenTTLSecond int

	clientURL    string
	smtpHost     string
	smtpPort     int
	smtpFrom     string
	smtpUsername string
	smtpPassword string

	rateLimit             int
	rateLimitWindowSecond int
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, JWT, mailer, and rate-limit configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config; rate limiting is disabled when no address is set
	cfg.redisAddr = getEnv("REDIS_ADDR", "")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return
	}

	// JWT and reset-token config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}
	if cfg.resetTokenTTLSecond, err = getEnvInt("RESET_TOKEN_TTL_SECOND", "3600"); err != nil {
		return
	}

	// Mailer config; the reset link points at the frontend
	cfg.clientURL = getEnv("CLIENT_URL", "http://localhost:3000")
	cfg.smtpHost = getEnv("SMTP_HOST", "")
	if cfg.smtpPort, err = getEnvInt("SMTP_PORT", "587"); err != nil {
		return
	}
	cfg.smtpFrom = getEnv("SMTP_FROM", "no-reply@wellness-sessions.local")
	cfg.smtpUsername = getEnv("SMTP_USERNAME", "")
	cfg.smtpPassword = getEnv("SMTP_PASSWORD", "")

	// Rate-limit config
	if cfg.rateLimit, err = getEnvInt("RATE_LIMIT", "100"); err != nil {
		return
	}
	if cfg.rateLimitWindowSecond, err = getEnvInt("RATE_LIMIT_WINDOW_SECOND", "900"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and HTTP server. It runs the
// schema migrations, sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	log, err := logger.New(cfg.logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	// Connect to Redis for the IP rate limiter; optional
	var limiter middlewares.Limiter
	if cfg.redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.redisAddr,
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		limiter = middlewares.NewFixedWindowLimiter(
			rdb, "wellness:ratelimit", cfg.rateLimit,
			time.Duration(cfg.rateLimitWindowSecond)*time.Second,
		)
	}

	// Initialize JWT service
	tokenSvc := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize mailer
	var resetMailer services.ResetMailer = mailer.NoopMailer{}
	if cfg.smtpHost != "" {
		resetMailer = mailer.NewSMTPMailer(
			cfg.smtpHost, cfg.smtpPort, cfg.smtpFrom,
			cfg.smtpUsername, cfg.smtpPassword, cfg.clientURL,
		)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSvc)
	resetService := services.NewPasswordResetService(
		userReadRepo, userWriteRepo, resetMailer,
		time.Duration(cfg.resetTokenTTLSecond)*time.Second,
	)
	sessionService := services.NewSessionService(sessionReadRepo, sessionWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(userReadRepo)
	forgotPasswordHandler := handlers.NewForgotPasswordHandler(resetService)
	verifyResetTokenHandler := handlers.NewVerifyResetTokenHandler(resetService)
	resetPasswordHandler := handlers.NewResetPasswordHandler(resetService)
	listSessionsHandler := handlers.NewListSessionsHandler(sessionService)
	mySessionsHandler := handlers.NewMySessionsHandler(sessionService)
	getMySessionHandler := handlers.NewGetMySessionHandler(sessionService)
	saveDraftHandler := handlers.NewSaveDraftHandler(sessionService)
	publishSessionHandler := handlers.NewPublishSessionHandler(sessionService)
	deleteSessionHandler := handlers.NewDeleteSessionHandler(sessionService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	if limiter != nil {
		r.Use(middlewares.RateLimitMiddleware(limiter))
	}

	authMiddleware := middlewares.AuthMiddleware(tokenSvc, userReadRepo)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)
		r.Post("/auth/forgot-password", forgotPasswordHandler)
		r.Get("/auth/verify-reset-token/{token}", verifyResetTokenHandler)
		r.Post("/auth/reset-password", resetPasswordHandler)
		r.Get("/sessions", listSessionsHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/auth/me", meHandler)
			r.Get("/sessions/my-sessions", mySessionsHandler)
			r.Get("/sessions/my-sessions/{id}", getMySessionHandler)
			r.Post("/sessions/my-sessions/save-draft", saveDraftHandler)
			r.Post("/sessions/my-sessions/publish", publishSessionHandler)
			r.Delete("/sessions/my-sessions/{id}", deleteSessionHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
