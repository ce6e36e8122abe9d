// Package config loads service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	// Loads .env into the process environment before Load runs.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string `mapstructure:"PORT"`
	Environment     string `mapstructure:"ENVIRONMENT"`
	SimulateLatency bool   `mapstructure:"SIMULATE_LATENCY"`
	MetricsToken    string `mapstructure:"METRICS_TOKEN"`
}

var envKeys = []string{"PORT", "ENVIRONMENT", "SIMULATE_LATENCY", "METRICS_TOKEN"}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SIMULATE_LATENCY", true)
	v.SetDefault("METRICS_TOKEN", "")

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs with debug behavior
// (console logging).
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
