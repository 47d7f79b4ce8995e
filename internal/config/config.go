package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything the process needs, resolved once at startup and
// passed explicitly into constructors. There is no module-level mutable
// configuration; the spreadsheet id chosen at runtime is persisted through
// the local store and pushed into the gateway via Reconfigure.
type Config struct {
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`

	Storage struct {
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"storage"`

	Cache struct {
		TTLMinutes    int    `mapstructure:"ttl_minutes"`
		RedisAddr     string `mapstructure:"redis_addr"`
		RedisPassword string `mapstructure:"redis_password"`
	} `mapstructure:"cache"`

	Google struct {
		ClientID      string `mapstructure:"client_id"`
		ClientSecret  string `mapstructure:"client_secret"`
		RedirectURL   string `mapstructure:"redirect_url"`
		SpreadsheetID string `mapstructure:"spreadsheet_id"`
	} `mapstructure:"google"`

	MercadoPago struct {
		AccessToken string `mapstructure:"access_token"`
	} `mapstructure:"mercadopago"`
}

// CacheTTL returns the freshness window used by the read path.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

func Load() (*Config, error) {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.AutomaticEnv()

	// Sensible defaults; the binary works without a config file.
	v.SetDefault("server.port", 8080)
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("cache.ttl_minutes", 60)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	// Environment overrides for the secrets and local knobs.
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Cache.RedisAddr = addr
	}
	if pw := os.Getenv("REDIS_PASSWORD"); pw != "" {
		cfg.Cache.RedisPassword = pw
	}
	if id := os.Getenv("GOOGLE_CLIENT_ID"); id != "" {
		cfg.Google.ClientID = id
	}
	if s := os.Getenv("GOOGLE_CLIENT_SECRET"); s != "" {
		cfg.Google.ClientSecret = s
	}
	if u := os.Getenv("GOOGLE_REDIRECT_URL"); u != "" {
		cfg.Google.RedirectURL = u
	}
	if id := os.Getenv("SPREADSHEET_ID"); id != "" {
		cfg.Google.SpreadsheetID = id
	}
	if t := os.Getenv("MERCADOPAGO_ACCESS_TOKEN"); t != "" {
		cfg.MercadoPago.AccessToken = t
	}

	return &cfg, nil
}
