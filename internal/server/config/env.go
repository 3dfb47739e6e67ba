package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Variables that
// are unset or empty leave the current value untouched. A .env file, if
// present, is loaded into the environment by the caller before LoadConfig
// runs.
//
// Supported variables:
//
//	ADDRESS           HTTP bind address (e.g. ":8080")
//	DATABASE_DSN      PostgreSQL DSN
//	SECRET_KEY        JWT HMAC secret key
//	ACCESS_TOKEN_TTL  access token validity, Go duration string (e.g. "30m")
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
