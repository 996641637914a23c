// Package config loads process-level configuration from the environment.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds server and database settings.
// CoinGecko settings live in platform/externalapi/coingecko.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `envconfig:"ADDR" default:":8080"`

	DBUser     string `envconfig:"DB_USER" default:"root"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBName     string `envconfig:"DB_NAME" default:"crypto_assets"`

	// InstanceName はCloud SQL接続名です。設定時はHost/Portより優先されます。
	InstanceName string `envconfig:"INSTANCE_CONNECTION_NAME"`

	// RunMigrations enables GORM AutoMigrate at startup.
	RunMigrations bool `envconfig:"RUN_MIGRATIONS" default:"true"`
}

// Load reads configuration from the environment, honoring a .env file
// in the working directory when present.
func Load() (Config, error) {
	// .envが無いのは正常（本番は環境変数で渡す）
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
