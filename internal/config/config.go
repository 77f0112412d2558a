package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Media drivers
const (
	MediaLocal = "local"
	MediaS3    = "s3"
)

type Config struct {
	Env           string              `yaml:"env" env:"ENV" env-default:"local"`
	HTTP          HTTPConfig          `yaml:"http"`
	Log           LogConfig           `yaml:"log"`
	Store         StoreConfig         `yaml:"store"`
	Redis         RedisConfig         `yaml:"redis"`
	NATS          NATSConfig          `yaml:"nats"`
	Media         MediaConfig         `yaml:"media"`
	Auth          AuthConfig          `yaml:"auth"`
	Auction       AuctionConfig       `yaml:"auction"`
	SMTP          SMTPConfig          `yaml:"smtp"`
	WhatsApp      WhatsAppConfig      `yaml:"whatsapp"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Seed          bool                `yaml:"seed" env:"SEED_SAMPLE_DATA" env-default:"false"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	IdempotencyTTL  time.Duration `yaml:"idempotency_ttl" env:"IDEMPOTENCY_TTL" env-default:"24h"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type StoreConfig struct {
	Driver      string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`
	MaxConns    int32  `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"20"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"LISTING_CACHE_TTL" env-default:"5m"`
}

type NATSConfig struct {
	URL string `yaml:"url" env:"NATS_URL"`
}

type MediaConfig struct {
	Driver    string `yaml:"driver" env:"MEDIA_DRIVER" env-default:"local"`
	Root      string `yaml:"root" env:"MEDIA_ROOT" env-default:"media"`
	BaseURL   string `yaml:"base_url" env:"MEDIA_BASE_URL" env-default:"/media"`
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET" env-default:"listing-images"`
	UseSSL    bool   `yaml:"use_ssl" env:"S3_USE_SSL" env-default:"false"`
	MaxUpload int64  `yaml:"max_upload" env:"MEDIA_MAX_UPLOAD_BYTES" env-default:"5242880"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"change-me"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"24h"`
}

type AuctionConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval" env:"AUCTION_SWEEP_INTERVAL" env-default:"30s"`
}

type SMTPConfig struct {
	Host        string        `yaml:"host" env:"SMTP_HOST"`
	Port        int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username    string        `yaml:"username" env:"SMTP_USERNAME"`
	Password    string        `yaml:"password" env:"SMTP_PASSWORD"`
	SenderEmail string        `yaml:"sender_email" env:"SMTP_SENDER_EMAIL"`
	AdminEmail  string        `yaml:"admin_email" env:"ADMIN_EMAIL"`
	Encryption  string        `yaml:"encryption" env:"SMTP_ENCRYPTION" env-default:"tls"`
	Timeout     time.Duration `yaml:"timeout" env:"SMTP_TIMEOUT" env-default:"10s"`
}

type WhatsAppConfig struct {
	Enabled     bool          `yaml:"enabled" env:"WHATSAPP_ENABLED" env-default:"false"`
	APIURL      string        `yaml:"api_url" env:"WHATSAPP_API_URL"`
	APIToken    string        `yaml:"api_token" env:"WHATSAPP_API_TOKEN"`
	PhoneNumber string        `yaml:"phone_number" env:"WHATSAPP_PHONE_NUMBER"`
	Timeout     time.Duration `yaml:"timeout" env:"WHATSAPP_TIMEOUT" env-default:"10s"`
}

type NotificationsConfig struct {
	MaxAttempts  int           `yaml:"max_attempts" env:"NOTIFY_MAX_ATTEMPTS" env-default:"3"`
	InitialDelay time.Duration `yaml:"initial_delay" env:"NOTIFY_INITIAL_DELAY" env-default:"500ms"`
}

// Addr returns the listen address for the HTTP server
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Load reads an optional .env file, then the YAML file at path (if any), then the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		err := cleanenv.ReadConfig(path, &cfg)
		if err == nil {
			return &cfg, cfg.validate()
		}
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}

	switch c.Media.Driver {
	case MediaLocal:
	case MediaS3:
		if c.Media.Endpoint == "" || c.Media.AccessKey == "" || c.Media.SecretKey == "" {
			return errors.New("config: S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY are required for s3 media")
		}
	default:
		return fmt.Errorf("config: unknown media driver %q", c.Media.Driver)
	}
	return nil
}
