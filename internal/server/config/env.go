package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, best-effort, so local setups can
// keep JWT_SECRET out of the shell profile. Real environment variables win
// over .env values (godotenv does not override).
//
// Recognized variables:
//
//	ADDRESS        bind address (e.g. ":3000")
//	DATA_DIR       data directory
//	PUBLIC_DIR     static site directory
//	UPLOADS_DIR    avatar uploads directory
//	JWT_SECRET     token signing secret
//	TOKEN_VALIDITY session lifetime, time.ParseDuration format (e.g. "24h")
//	BCRYPT_COST    bcrypt cost factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		config.DataDir = v
	}
	if v := os.Getenv("PUBLIC_DIR"); v != "" {
		config.PublicDir = v
	}
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		config.UploadsDir = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
