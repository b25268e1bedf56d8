// Package config builds the application configuration from the process environment.
// It is loaded once at startup and handed to the managers that need it.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const envFile = ".env"

// Config contains all server configuration parameters.
type Config struct {
	Environment string     `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string     `env:"LOG_LEVEL" envDefault:"INFO"`
	ServiceName string     `env:"SERVICE_NAME" envDefault:"heritage-server"`
	Server      Server     `envPrefix:"SERVER_"`
	Database    Database   `envPrefix:"DB_"`
	Auth        Auth       `envPrefix:"AUTH_"`
	Mail        Mail       `envPrefix:"MAIL_"`
	Storage     Storage    `envPrefix:"STORAGE_"`
	Redis       Redis      `envPrefix:"REDIS_"`
	Validation  Validation `envPrefix:"VALIDATION_"`
}

// Server contains HTTP server parameters.
type Server struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:8080"`
	APIVersion      string        `env:"API_VERSION" envDefault:"main:latest"`
}

// Database contains Postgres connection parameters.
type Database struct {
	Host              string        `env:"HOST" envDefault:"localhost"`
	Port              string        `env:"PORT" envDefault:"5432"`
	User              string        `env:"USER" envDefault:"heritage"`
	Password          string        `env:"PASS" envDefault:"heritage"`
	Name              string        `env:"NAME" envDefault:"heritage"`
	SSLMode           string        `env:"SSLMODE" envDefault:"disable"`
	MinConns          int32         `env:"MIN_CONNS" envDefault:"5"`
	MaxConns          int32         `env:"MAX_CONNS" envDefault:"30"`
	MaxConnIdleTime   time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"2m"`
	HealthCheckPeriod time.Duration `env:"HEALTH_CHECK_PERIOD" envDefault:"1m"`
	Migrate           bool          `env:"MIGRATE" envDefault:"true"`
}

// Auth contains token parameters.
type Auth struct {
	KeyPairPath               string        `env:"KEY_PAIR_PATH" envDefault:"keys/ed25519.key"`
	Issuer                    string        `env:"ISSUER" envDefault:"heritage-server"`
	TokenLifetime             time.Duration `env:"TOKEN_LIFETIME" envDefault:"24h"`
	VerificationTokenLifetime time.Duration `env:"VERIFICATION_TOKEN_LIFETIME" envDefault:"24h"`
}

// Mail contains parameters of the notification collaborator.
type Mail struct {
	Domain      string        `env:"DOMAIN" envDefault:"mail.bharat-heritage.in"`
	APIKey      string        `env:"API_KEY"`
	Sender      string        `env:"SENDER" envDefault:"Bharat Heritage <team@mail.bharat-heritage.in>"`
	FrontendURL string        `env:"FRONTEND_URL" envDefault:"http://localhost:8080"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"5s"`
	EURegion    bool          `env:"EU_REGION" envDefault:"false"`
}

// Storage contains blob store parameters for uploaded images.
type Storage struct {
	Driver      string `env:"DRIVER" envDefault:"local"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`
	PublicPath  string `env:"PUBLIC_PATH" envDefault:"/uploads"`
	Endpoint    string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey   string `env:"ACCESS_KEY"`
	SecretKey   string `env:"SECRET_KEY"`
	Bucket      string `env:"BUCKET" envDefault:"heritage-uploads"`
	UseSSL      bool   `env:"USE_SSL" envDefault:"false"`
	PublicURL   string `env:"PUBLIC_URL" envDefault:"http://localhost:9000"`
	MaxFileSize int64  `env:"MAX_FILE_SIZE" envDefault:"5242880"`
}

// Redis contains parameters of the rate limiter backend. An empty Addr disables rate limiting.
type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	Limit    int64         `env:"RATE_LIMIT" envDefault:"10"`
	Window   time.Duration `env:"RATE_WINDOW" envDefault:"15m"`
}

// Validation contains request validation switches.
type Validation struct {
	VerifyEmailMX bool   `env:"VERIFY_EMAIL_MX" envDefault:"false"`
	VerifierEmail string `env:"VERIFIER_EMAIL" envDefault:"team@mail.bharat-heritage.in"`
}

// Load reads the .env file if present and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Storage.Driver != "local" && cfg.Storage.Driver != "minio" {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

// IsProduction reports whether mails are actually delivered.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ConnectionString returns the pgx connection string.
func (d *Database) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Address returns the listen address of the HTTP server.
func (s *Server) Address() string {
	return ":" + s.Port
}
