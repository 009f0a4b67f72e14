package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete service configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Notification NotificationConfig `yaml:"notification"`
	Match        MatchConfig        `yaml:"match"`
	Job          JobConfig          `yaml:"job"`
	Retry        RetryConfig        `yaml:"retry"`
	Logger       LoggerConfig       `yaml:"logger"`
	CORS         CORSConfig         `yaml:"cors"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	DBName          string        `yaml:"dbname"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

// GetDSN returns the connection string. An explicit URL wins over the individual fields.
func (d DatabaseConfig) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether any Redis endpoint is configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Addr != ""
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type NotificationConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	Timeout      time.Duration `yaml:"timeout"`
	QueueSize    int           `yaml:"queue_size"`
	Workers      int           `yaml:"workers"`
	RedisPublish bool          `yaml:"redis_publish"`
}

type MatchConfig struct {
	InvitationTTL time.Duration `yaml:"invitation_ttl"`
	MaxPlayers    int           `yaml:"max_players"`
}

type JobConfig struct {
	InvitationExpirySpec string        `yaml:"invitation_expiry_spec"`
	MetricsInterval      time.Duration `yaml:"metrics_interval"`
}

type RetryConfig struct {
	MaxAttempts     int           `yaml:"max_attempts"`
	InitialInterval time.Duration `yaml:"initial_interval"`
	MaxInterval     time.Duration `yaml:"max_interval"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Mode:            "debug",
			BasePath:        "/api/matches",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "matches",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			AutoMigrate:     true,
		},
		Notification: NotificationConfig{
			Timeout:   5 * time.Second,
			QueueSize: 1024,
			Workers:   4,
		},
		Match: MatchConfig{
			InvitationTTL: 7 * 24 * time.Hour,
			MaxPlayers:    100,
		},
		Job: JobConfig{
			InvitationExpirySpec: "@every 10m",
			MetricsInterval:      60 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 50 * time.Millisecond,
			MaxInterval:     500 * time.Millisecond,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads path (if it exists) over the defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString("PORT", &cfg.Server.Port)
	setString("GIN_MODE", &cfg.Server.Mode)
	setString("BASE_PATH", &cfg.Server.BasePath)
	setString("LOG_LEVEL", &cfg.Logger.Level)

	setString("DATABASE_URL", &cfg.Database.URL)
	setString("DB_HOST", &cfg.Database.Host)
	setString("DB_USER", &cfg.Database.User)
	setString("DB_PASSWORD", &cfg.Database.Password)
	setString("DB_NAME", &cfg.Database.DBName)
	setString("DB_SSLMODE", &cfg.Database.SSLMode)

	setString("REDIS_URL", &cfg.Redis.URL)
	setString("REDIS_ADDR", &cfg.Redis.Addr)
	setString("REDIS_PASSWORD", &cfg.Redis.Password)

	setString("JWT_SECRET", &cfg.JWT.Secret)
	setString("NOTIFICATION_API_URL", &cfg.Notification.BaseURL)
	setString("INTERNAL_API_KEY", &cfg.Notification.APIKey)
	setString("EXPIRY_SWEEP_SPEC", &cfg.Job.InvitationExpirySpec)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}

	for _, e := range []struct {
		key string
		dst *int
	}{
		{"DB_PORT", &cfg.Database.Port},
		{"REDIS_DB", &cfg.Redis.DB},
		{"RETRY_MAX_ATTEMPTS", &cfg.Retry.MaxAttempts},
	} {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	if v := os.Getenv("INVITATION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid INVITATION_TTL: %w", err)
		}
		cfg.Match.InvitationTTL = d
	}
	if v := os.Getenv("REDIS_PUBLISH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PUBLISH: %w", err)
		}
		cfg.Notification.RedisPublish = b
	}
	return nil
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks values the service cannot run without
func (c *Config) Validate() error {
	if c.Match.InvitationTTL <= 0 {
		return fmt.Errorf("match.invitation_ttl must be positive")
	}
	if c.Match.MaxPlayers < 2 {
		return fmt.Errorf("match.max_players must be at least 2")
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1")
	}
	return nil
}
