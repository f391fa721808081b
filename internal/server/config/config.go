// Package config handles configuration for the server component, including
// defaults, environment overlay (with optional .env file), JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the linkfolio server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DataDir: directory holding the flat JSON record files.
//   - PublicDir: directory served as the static site root.
//   - UploadsDir: directory receiving avatar uploads, served under /uploads/.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: session token lifetime.
//   - BcryptCost: cost factor for password hashing.
type Config struct {
	EndpointAddr          string
	DataDir               string
	PublicDir             string
	UploadsDir            string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DataDir = "data"
	c.PublicDir = "public"
	c.UploadsDir = "public/uploads"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
