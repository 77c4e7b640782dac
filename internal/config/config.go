package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Database DatabaseConfig
	Seed     SeedConfig
}

type DatabaseConfig struct {
	Path string `mapstructure:"DB_PATH"`
}

// SeedConfig is the initial manager account created on an empty database.
type SeedConfig struct {
	AdminUsername string `mapstructure:"SEED_ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"SEED_ADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_PATH", "contactdesk.db")
	viper.SetDefault("SEED_ADMIN_USERNAME", "admin")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin123")

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.Database.Path = viper.GetString("DB_PATH")
	cfg.Seed.AdminUsername = viper.GetString("SEED_ADMIN_USERNAME")
	cfg.Seed.AdminPassword = viper.GetString("SEED_ADMIN_PASSWORD")

	return &cfg, nil
}
