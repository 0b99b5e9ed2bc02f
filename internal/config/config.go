package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	SessionLifetime time.Duration
	InsecureCookies bool

	// CheckoutDelay is how long the simulated payment step takes before an
	// order confirmation comes back. There is no real payment processor.
	CheckoutDelay time.Duration
}

// Load reads config from environment (MEERA_ prefix) and optional meera.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEERA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("meera")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("session.lifetime", "720h")
	v.SetDefault("checkout.delay", "2s")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEERA_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	delay, err := time.ParseDuration(v.GetString("checkout.delay"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEERA_CHECKOUT_DELAY: %w", err)
	}
	cfg.CheckoutDelay = delay

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("MEERA_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("MEERA_DB_DSN is required")
	}

	return cfg, nil
}
