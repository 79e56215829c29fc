package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Report   ReportConfig
	Status   StatusConfig
}

type ServerConfig struct {
	Port        string
	Environment string
}

type DatabaseConfig struct {
	// URL is either a postgres:// DSN or a sqlite file path.
	URL string
}

type JWTConfig struct {
	// Secret enables the optional caller-identity middleware. Empty means
	// every write is attributed to SYSTEM.
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ReportConfig struct {
	// Timezone is the IANA name the statistics endpoints evaluate local
	// days in. The deployment this schema comes from runs at UTC+8.
	Timezone string
}

// StatusConfig maps semantic status names to status-table identifiers.
// Ids are deployment data, not constants; a zero value means unmapped and
// the dependent behavior is skipped (cancel leaves the status untouched,
// the active-user counter counts every user).
type StatusConfig struct {
	BookedID   int16
	CanceledID int16
	ActiveID   int16
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("REPORT_TIMEZONE", "Asia/Manila")
	viper.SetDefault("STATUS_BOOKED_ID", 4)
	viper.SetDefault("STATUS_CANCELED_ID", 5)
	viper.SetDefault("STATUS_ACTIVE_ID", 0)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("config file not found, using environment variables only")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
		Report: ReportConfig{
			Timezone: viper.GetString("REPORT_TIMEZONE"),
		},
		Status: StatusConfig{
			BookedID:   int16(viper.GetInt("STATUS_BOOKED_ID")),
			CanceledID: int16(viper.GetInt("STATUS_CANCELED_ID")),
			ActiveID:   int16(viper.GetInt("STATUS_ACTIVE_ID")),
		},
	}

	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}

	return cfg, nil
}
