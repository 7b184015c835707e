package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Admin    AdminConfig    `mapstructure:"admin"`
	S3       S3Config       `mapstructure:"s3"`
}

// DefaultAddress is used when neither server.address nor PORT is set.
const DefaultAddress = ":3000"

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release, test
}

// Supported database drivers.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type DatabaseConfig struct {
	Driver  string        `mapstructure:"driver"`
	URI     string        `mapstructure:"uri"`
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AdminConfig guards the bulk delete route. DeleteCodeHash, when set, is a
// bcrypt hash and takes precedence over DeleteCode.
type AdminConfig struct {
	DeleteCode     string `mapstructure:"delete_code"`
	DeleteCodeHash string `mapstructure:"delete_code_hash"`
}

// S3Config configures the optional user archive. An empty BucketName disables it.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
}

// LoadConfig reads configuration from path/config.yaml (optional) and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Conventional PaaS names.
	_ = v.BindEnv("database.uri", "DATABASE_URI", "MONGO_URI")
	_ = v.BindEnv("server.port", "PORT")

	// Every key needs a default (even empty) for AutomaticEnv to reach it through Unmarshal.
	v.SetDefault("server.address", "")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exercise_tracker")
	v.SetDefault("database.timeout", "10s")
	v.SetDefault("admin.delete_code", "")
	v.SetDefault("admin.delete_code_hash", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil // The file is optional
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	// A bare PORT only applies when no explicit address was configured.
	if config.Server.Address == "" {
		config.Server.Address = DefaultAddress
		if port := v.GetString("server.port"); port != "" {
			config.Server.Address = ":" + strings.TrimPrefix(port, ":")
		}
	}

	if config.Database.Driver != DriverMongo && config.Database.Driver != DriverMemory {
		return config, errors.New("database.driver must be \"mongo\" or \"memory\"")
	}
	switch config.Server.Mode {
	case "debug", "release", "test":
	default:
		return config, errors.New("server.mode must be debug, release or test")
	}

	return config, nil
}
