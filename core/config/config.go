package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Queue    QueueConfig    `mapstructure:"queue"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	AllowOrigins    []string      `mapstructure:"allow_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	LogLevel        string        `mapstructure:"log_level"`
}

// BackendConfig points at the remote event-management REST API.
type BackendConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	ServiceToken string        `mapstructure:"service_token"` // used by background jobs; empty calls anonymously
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type SessionConfig struct {
	Secret       string        `mapstructure:"secret"`
	TTL          time.Duration `mapstructure:"ttl"` // 0 keeps the session until logout
	CookieName   string        `mapstructure:"cookie_name"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

type StorageConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	PublicURL string `mapstructure:"public_url"`
}

type QueueConfig struct {
	Concurrency       int           `mapstructure:"concurrency"`
	DefaultWeight     int           `mapstructure:"default_weight"`
	MaintenanceWeight int           `mapstructure:"maintenance_weight"`
	Retention         time.Duration `mapstructure:"retention"` // finished tasks stay inspectable this long
}

var (
	instance *Config
	once     sync.Once
	initErr  error
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.allow_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("backend.base_url", "http://localhost:5000/")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("backend.service_token", "")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "event_portal")

	v.SetDefault("redis.url", "redis://localhost:6379/0")

	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 0)
	v.SetDefault("session.cookie_name", "portal_session")
	v.SetDefault("session.cookie_secure", false)

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.public_url", "")

	v.SetDefault("queue.concurrency", 5)
	v.SetDefault("queue.default_weight", 3)
	v.SetDefault("queue.maintenance_weight", 1)
	v.SetDefault("queue.retention", time.Hour)
}

// Load reads .env (when present) and the environment into a Config.
// SERVER_PORT overrides server.port, BACKEND_BASE_URL overrides backend.base_url and so on.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("config: SESSION_SECRET is required")
	}
	if !strings.HasSuffix(cfg.Backend.BaseURL, "/") {
		cfg.Backend.BaseURL += "/"
	}
	return cfg, nil
}

func Init() error {
	once.Do(func() {
		instance, initErr = Load()
	})
	return initErr
}

func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

func GetSafe() (*Config, bool) {
	return instance, instance != nil
}

// Set replaces the process config. Used by tests and tooling.
func Set(cfg *Config) {
	instance = cfg
}
