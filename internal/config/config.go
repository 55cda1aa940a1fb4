package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`

	// Clinic behavior knobs. Documented defaults, not UI-exposed tunables;
	// changing them changes reminder and stock-alert semantics.
	ReminderOffsetDays     int `mapstructure:"REMINDER_OFFSET_DAYS"`
	LowStockThreshold      int `mapstructure:"LOW_STOCK_THRESHOLD"`
	CriticalStockThreshold int `mapstructure:"CRITICAL_STOCK_THRESHOLD"`

	ClinicName string `mapstructure:"CLINIC_NAME"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("REMINDER_OFFSET_DAYS", 3)
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
	v.SetDefault("CRITICAL_STOCK_THRESHOLD", 2)
	v.SetDefault("CLINIC_NAME", "Clinic")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("REMINDER_OFFSET_DAYS")
	v.BindEnv("LOW_STOCK_THRESHOLD")
	v.BindEnv("CRITICAL_STOCK_THRESHOLD")
	v.BindEnv("CLINIC_NAME")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.ReminderOffsetDays < 0 {
		return fmt.Errorf("REMINDER_OFFSET_DAYS must be >= 0, got %d", c.ReminderOffsetDays)
	}
	if c.LowStockThreshold < 0 || c.CriticalStockThreshold < 0 {
		return fmt.Errorf("stock thresholds must be >= 0")
	}
	if c.CriticalStockThreshold > c.LowStockThreshold {
		return fmt.Errorf("CRITICAL_STOCK_THRESHOLD (%d) must not exceed LOW_STOCK_THRESHOLD (%d)",
			c.CriticalStockThreshold, c.LowStockThreshold)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}
