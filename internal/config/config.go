package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported persistence backends. Exactly one serves a running process.
const (
	DriverPostgres = "postgres"
	DriverEmbedded = "embedded"
	DriverMock     = "mock"
)

// Supported object storage modes.
const (
	StorageS3    = "s3"
	StorageLocal = "local"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		// SnapshotPath is where the embedded driver persists its image.
		SnapshotPath string `yaml:"snapshot_path" env:"DB_SNAPSHOT_PATH"`
	} `yaml:"database"`

	Storage struct {
		Mode          string `yaml:"mode" env:"STORAGE_MODE"`
		Endpoint      string `yaml:"endpoint" env:"STORAGE_ENDPOINT"`
		AccessKey     string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
		SecretKey     string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
		UseSSL        bool   `yaml:"use_ssl" env:"STORAGE_USE_SSL"`
		PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
		UploadsBucket string `yaml:"uploads_bucket" env:"STORAGE_UPLOADS_BUCKET"`
		NewsBucket    string `yaml:"news_bucket" env:"STORAGE_NEWS_BUCKET"`
		LocalPath     string `yaml:"local_path" env:"STORAGE_LOCAL_PATH"`
	} `yaml:"storage"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Mock struct {
		MinLatencyMS int `yaml:"min_latency_ms" env:"MOCK_MIN_LATENCY_MS"`
		MaxLatencyMS int `yaml:"max_latency_ms" env:"MOCK_MAX_LATENCY_MS"`
	} `yaml:"mock"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus environment cover development.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Driver = DriverEmbedded
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campuslink"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.SnapshotPath = "data/campuslink.db.b64"

	config.Storage.Mode = StorageLocal
	config.Storage.UploadsBucket = "uploads"
	config.Storage.NewsBucket = "campus-news"
	config.Storage.LocalPath = "data/storage"
	config.Storage.PublicBaseURL = "http://localhost:8080/files"

	config.Mock.MinLatencyMS = 200
	config.Mock.MaxLatencyMS = 400

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case DriverPostgres, DriverEmbedded, DriverMock:
	default:
		return fmt.Errorf("unknown database driver %q", config.Database.Driver)
	}

	switch config.Storage.Mode {
	case StorageS3, StorageLocal:
	default:
		return fmt.Errorf("unknown storage mode %q", config.Storage.Mode)
	}

	if config.Storage.Mode == StorageS3 {
		if config.Storage.Endpoint == "" {
			return fmt.Errorf("storage endpoint is required for s3 mode")
		}
		if config.Storage.AccessKey == "" || config.Storage.SecretKey == "" {
			return fmt.Errorf("storage credentials are required for s3 mode")
		}
	}

	if config.Mock.MaxLatencyMS < config.Mock.MinLatencyMS {
		return fmt.Errorf("mock max latency must not be below min latency")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(GetEnv(key, ""))
	switch valueStr {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
