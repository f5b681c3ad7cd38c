package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Engine
	Book              string   `mapstructure:"BOOK"`
	AllowedFamilies   []string `mapstructure:"ALLOWED_FAMILIES"`
	PriceFloor        int      `mapstructure:"PRICE_FLOOR"`
	MaxCandidates     int      `mapstructure:"MAX_CANDIDATES"`
	MaxCombinations   int64    `mapstructure:"MAX_COMBINATIONS"`
	ParlayLegs        int      `mapstructure:"PARLAY_LEGS"`
	MostProbableCount int      `mapstructure:"MOST_PROBABLE_COUNT"`
	TwoLegPayoutFloor float64  `mapstructure:"TWO_LEG_PAYOUT_FLOOR"`

	// Promotion
	PromoStake             float64 `mapstructure:"PROMO_STAKE"`
	PromoFreeBetConversion float64 `mapstructure:"PROMO_FREE_BET_CONVERSION"`

	// Cache
	ReportCacheExpiration int `mapstructure:"REPORT_CACHE_EXPIRATION"` // seconds

	// Background refresh
	EnableRefresher bool   `mapstructure:"ENABLE_REFRESHER"`
	RefreshInterval string `mapstructure:"REFRESH_INTERVAL"`

	// Rate limiting
	RateLimitPerSecond float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
	RateLimitBurst     int     `mapstructure:"RATE_LIMIT_BURST"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "parlay_optimizer.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")

	// Engine defaults mirror optimizer.DefaultConfig
	viper.SetDefault("BOOK", "fanduel")
	viper.SetDefault("ALLOWED_FAMILIES", "")
	viper.SetDefault("PRICE_FLOOR", -500)
	viper.SetDefault("MAX_CANDIDATES", 24)
	viper.SetDefault("MAX_COMBINATIONS", 200000)
	viper.SetDefault("PARLAY_LEGS", 5)
	viper.SetDefault("MOST_PROBABLE_COUNT", 3)
	viper.SetDefault("TWO_LEG_PAYOUT_FLOOR", 3.0)
	viper.SetDefault("PROMO_STAKE", 100.0)
	viper.SetDefault("PROMO_FREE_BET_CONVERSION", 0.70)

	viper.SetDefault("REPORT_CACHE_EXPIRATION", 3600) // 1 hour in seconds
	viper.SetDefault("ENABLE_REFRESHER", false)
	viper.SetDefault("REFRESH_INTERVAL", "2h")
	viper.SetDefault("RATE_LIMIT_PER_SECOND", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse comma-separated lists
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}
	if familiesStr := viper.GetString("ALLOWED_FAMILIES"); familiesStr != "" {
		config.AllowedFamilies = strings.Split(familiesStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
