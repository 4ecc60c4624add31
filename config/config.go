// Package config loads server settings from defaults, an optional YAML file
// and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Store backends
const (
	BackendDynamoDB = "dynamodb"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

// ConfigPathEnvVar overrides the YAML config file location
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are tried in order when CONFIG_PATH is unset
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Store   StoreConfig   `koanf:"store"`
	AWS     AWSConfig     `koanf:"aws"`
	Mongo   MongoConfig   `koanf:"mongo"`
	Photos  PhotosConfig  `koanf:"photos"`
	Logging LoggingConfig `koanf:"logging"`
}

type ServerConfig struct {
	Port        string `koanf:"port"`
	CORSOrigins string `koanf:"cors_origins"` // comma separated
}

type StoreConfig struct {
	Backend       string `koanf:"backend"`
	ProfilesTable string `koanf:"profiles_table"`
	LoginsTable   string `koanf:"logins_table"`
}

type AWSConfig struct {
	Region           string `koanf:"region"`
	DynamoDBEndpoint string `koanf:"dynamodb_endpoint"` // e.g. DynamoDB Local
}

type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type PhotosConfig struct {
	Bucket  string `koanf:"bucket"`
	Region  string `koanf:"region"`
	BaseURL string `koanf:"base_url"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "5000",
			CORSOrigins: "*",
		},
		Store: StoreConfig{
			Backend:       BackendDynamoDB,
			ProfilesTable: "user_profile_data",
			LoginsTable:   "user_login_data",
		},
		AWS: AWSConfig{
			Region: "us-east-2",
		},
		Mongo: MongoConfig{
			Database: "roommate",
		},
		Photos: PhotosConfig{
			Bucket:  "profile-photos-1",
			BaseURL: "https://profile-photos-1.s3.us-east-2.amazonaws.com",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envMappings maps environment variable names (lower-cased) to config keys
var envMappings = map[string]string{
	"port":              "server.port",
	"cors_origins":      "server.cors_origins",
	"store_backend":     "store.backend",
	"profiles_table":    "store.profiles_table",
	"logins_table":      "store.logins_table",
	"aws_region":        "aws.region",
	"dynamodb_endpoint": "aws.dynamodb_endpoint",
	"mongo_uri":         "mongo.uri",
	"mongo_database":    "mongo.database",
	"s3_bucket_name":    "photos.bucket",
	"s3_region":         "photos.region",
	"photo_base_url":    "photos.base_url",
	"log_level":         "logging.level",
	"log_format":        "logging.format",
}

func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	// unmapped variables are dropped
	return ""
}

// Load reads .env (if present), defaults, the YAML file and the environment
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Photos.Region == "" {
		cfg.Photos.Region = cfg.AWS.Region
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks settings that would otherwise fail later at connect time
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendDynamoDB:
		if c.Store.ProfilesTable == "" || c.Store.LoginsTable == "" {
			return errors.New("profiles_table and logins_table are required for the dynamodb backend")
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGO_URI is required for the mongo backend")
		}
		if c.Mongo.Database == "" {
			return errors.New("MONGO_DATABASE is required for the mongo backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	return nil
}

// AllowedOrigins splits the CORS origins setting
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.Server.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
