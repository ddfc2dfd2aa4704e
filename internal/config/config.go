package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Predictor modes.
const (
	PredictorModeLocal  = "local"
	PredictorModeRemote = "remote"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Predictor PredictorConfig
}

type AppConfig struct {
	Name            string        `mapstructure:"name"`
	Env             string        `mapstructure:"env"`
	LogLevel        string        `mapstructure:"log_level"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type PredictorConfig struct {
	Mode         string        `mapstructure:"mode"`
	ArtifactPath string        `mapstructure:"artifact_path"`
	ServiceURL   string        `mapstructure:"service_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/airquality/")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	overrideFromEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "airquality-backend")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", "5s")

	v.SetDefault("database.url", "")
	v.SetDefault("database.connect_timeout", "10s")

	v.SetDefault("predictor.mode", PredictorModeLocal)
	v.SetDefault("predictor.artifact_path", "model/artifact.json")
	v.SetDefault("predictor.service_url", "http://localhost:8000")
	v.SetDefault("predictor.timeout", "30s")
}

func overrideFromEnv(v *viper.Viper) {
	if port := os.Getenv("PORT"); port != "" {
		v.Set("app.port", port)
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		v.Set("app.env", env)
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		v.Set("app.log_level", logLevel)
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}

	if mode := os.Getenv("PREDICTOR_MODE"); mode != "" {
		v.Set("predictor.mode", mode)
	}
	if path := os.Getenv("MODEL_PATH"); path != "" {
		v.Set("predictor.artifact_path", path)
	}
	if url := os.Getenv("ML_SERVICE_URL"); url != "" {
		v.Set("predictor.service_url", url)
	}
}

func validateConfig(cfg *Config) error {
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return fmt.Errorf("app port must be between 1 and 65535")
	}

	switch cfg.Predictor.Mode {
	case PredictorModeLocal:
		if cfg.Predictor.ArtifactPath == "" {
			return fmt.Errorf("predictor artifact path cannot be empty in local mode")
		}
	case PredictorModeRemote:
		if cfg.Predictor.ServiceURL == "" {
			return fmt.Errorf("predictor service URL cannot be empty in remote mode")
		}
	default:
		return fmt.Errorf("predictor mode must be %q or %q, got %q",
			PredictorModeLocal, PredictorModeRemote, cfg.Predictor.Mode)
	}

	return nil
}
