package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-31"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-31") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" || cfg.pgDB != "database" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis is optional and off by default
	if cfg.redisAddr != "" || cfg.redisDB != 0 || cfg.redisPassword != "" {
		t.Errorf("unexpected redis config")
	}

	// JWT and reset tokens
	if cfg.jwtSecretKey != "my_super_secret_key" || cfg.jwtExpSecond != 604800 || cfg.resetTokenTTLSecond != 3600 {
		t.Errorf("unexpected token config")
	}

	// Mailer
	if cfg.clientURL != "http://localhost:3000" || cfg.smtpHost != "" || cfg.smtpPort != 587 {
		t.Errorf("unexpected mailer config")
	}

	// Rate limit
	if cfg.rateLimit != 100 || cfg.rateLimitWindowSecond != 900 {
		t.Errorf("unexpected rate limit config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_ADDR", "redis.example.com:6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")
	os.Setenv("RESET_TOKEN_TTL_SECOND", "600")

	os.Setenv("CLIENT_URL", "https://app.example.com")
	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_PORT", "2525")
	os.Setenv("SMTP_FROM", "reset@example.com")
	os.Setenv("SMTP_USERNAME", "mailer")
	os.Setenv("SMTP_PASSWORD", "mailpass")

	os.Setenv("RATE_LIMIT", "50")
	os.Setenv("RATE_LIMIT_WINDOW_SECOND", "60")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" || cfg.pgDB != "mydb" ||
		cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisAddr != "redis.example.com:6380" || cfg.redisDB != 2 || cfg.redisPassword != "redispass" {
		t.Errorf("unexpected redis config")
	}
	if cfg.jwtSecretKey != "supersecret" || cfg.jwtExpSecond != 300 || cfg.resetTokenTTLSecond != 600 {
		t.Errorf("unexpected token config")
	}
	if cfg.clientURL != "https://app.example.com" || cfg.smtpHost != "smtp.example.com" || cfg.smtpPort != 2525 ||
		cfg.smtpFrom != "reset@example.com" || cfg.smtpUsername != "mailer" || cfg.smtpPassword != "mailpass" {
		t.Errorf("unexpected mailer config")
	}
	if cfg.rateLimit != 50 || cfg.rateLimitWindowSecond != 60 {
		t.Errorf("unexpected rate limit config")
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Error("expected error for non-numeric POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	cfg := config{
		appHost:  "127.0.0.1",
		appPort:  "8086",
		logLevel: "debug",

		pgHost:         pgHost,
		pgPort:         pgPort.Int(),
		pgUser:         "user",
		pgPassword:     "password",
		pgDB:           "testdb",
		pgMaxOpenConns: 5,
		pgMaxIdleConns: 2,

		jwtSecretKey:        "testsecret",
		jwtExpSecond:        60,
		resetTokenTTLSecond: 3600,

		clientURL: "http://localhost:3000",
		smtpPort:  587,

		rateLimit:             100,
		rateLimitWindowSecond: 900,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
	}
}
