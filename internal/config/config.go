package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Booking BookingConfig `mapstructure:"booking"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// BookingConfig holds wizard defaults.
type BookingConfig struct {
	// DefaultZone pre-fills the postcode step.
	DefaultZone string `mapstructure:"default_zone"`
	// PreferredSize picks the initially active skip tab; when the catalog
	// has no such size the selection falls back to the most popular entry.
	PreferredSize int `mapstructure:"preferred_size"`
	// EarliestDeliveryDays is the offset from today to the first offered
	// delivery date.
	EarliestDeliveryDays int `mapstructure:"earliest_delivery_days"`
	// DateWindowDays is how many candidate dates the date step offers.
	DateWindowDays int `mapstructure:"date_window_days"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SKIPFLOW_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.currency_symbol", "£")
	v.SetDefault("ui.date_format", "Mon 02 Jan")
	v.SetDefault("booking.default_zone", "")
	v.SetDefault("booking.preferred_size", 6)
	v.SetDefault("booking.earliest_delivery_days", 2)
	v.SetDefault("booking.date_window_days", 14)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SKIPFLOW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "skipflow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SKIPFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Booking.DateWindowDays <= 0 {
		c.Booking.DateWindowDays = 14
	}
	if c.Booking.EarliestDeliveryDays < 0 {
		c.Booking.EarliestDeliveryDays = 0
	}
	return c, nil
}
