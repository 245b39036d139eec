package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Pricing: rate per kg is owned here, not by the pricing engine.
	RatePerKg float64
	// DVLA checks granted to a user seen for the first time.
	DefaultChecks int

	DVLAAPIURL           string
	DVLAAPIKey           string
	DVLATimeoutSecs      int
	RegistryCacheTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "scrapcar"),
		MySQLUser: getenv("MYSQL_USER", "scrapcar"),
		MySQLPass: getenv("MYSQL_PASS", "scrapcar"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		RatePerKg:     0.15,
		DefaultChecks: getenvInt("DEFAULT_CHECKS", 3),

		DVLAAPIURL:           getenv("DVLA_API_URL", "https://driver-vehicle-licensing.api.gov.uk"),
		DVLAAPIKey:           os.Getenv("DVLA_API_KEY"),
		DVLATimeoutSecs:      getenvInt("DVLA_TIMEOUT_SECONDS", 5),
		RegistryCacheTTLSecs: getenvInt("REGISTRY_CACHE_TTL_SECONDS", 86400),
	}
	if v := os.Getenv("RATE_PER_KG"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerKg = f
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.RatePerKg <= 0 {
		return fmt.Errorf("RATE_PER_KG must be positive, got %v", c.RatePerKg)
	}
	if c.DefaultChecks <= 0 {
		return fmt.Errorf("DEFAULT_CHECKS must be positive, got %d", c.DefaultChecks)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
