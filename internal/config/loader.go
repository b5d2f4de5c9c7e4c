package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by Defaults.
type Config struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	ArtifactsDir string `json:"artifacts_dir" yaml:"artifacts_dir" toml:"artifacts_dir"`
	APIRevision  int    `json:"api_revision" yaml:"api_revision" toml:"api_revision"`

	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format"`

	CacheSize    int `json:"cache_size" yaml:"cache_size" toml:"cache_size"`
	BatchWorkers int `json:"batch_workers" yaml:"batch_workers" toml:"batch_workers"`

	MaxBodyBytes           int64   `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	RequestTimeoutSeconds  int64   `json:"request_timeout_seconds" yaml:"request_timeout_seconds" toml:"request_timeout_seconds"`
	ShutdownTimeoutSeconds int64   `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`
	RateLimit              float64 `json:"rate_limit" yaml:"rate_limit" toml:"rate_limit"`
	RateLimitBurst         int     `json:"rate_limit_burst" yaml:"rate_limit_burst" toml:"rate_limit_burst"`

	// CORSEnabled is a pointer so a file can switch CORS off explicitly.
	CORSEnabled        *bool    `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Defaults returns the configuration used when nothing else is specified.
func Defaults() Config {
	on := true
	return Config{
		Addr:                   ":8000",
		ArtifactsDir:           "dist",
		APIRevision:            1,
		LogLevel:               "info",
		LogFormat:              "json",
		BatchWorkers:           4,
		MaxBodyBytes:           1 << 20,
		ShutdownTimeoutSeconds: 5,
		CORSEnabled:            &on,
		CORSAllowedOrigins:     []string{"*"},
		CORSAllowedMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		CORSAllowedHeaders:     []string{"*"},
	}
}

// Merge returns c with every unspecified field taken from base.
func (c Config) Merge(base Config) Config {
	out := base
	if c.Addr != "" {
		out.Addr = c.Addr
	}
	if c.ArtifactsDir != "" {
		out.ArtifactsDir = c.ArtifactsDir
	}
	if c.APIRevision != 0 {
		out.APIRevision = c.APIRevision
	}
	if c.LogLevel != "" {
		out.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		out.LogFormat = c.LogFormat
	}
	if c.CacheSize != 0 {
		out.CacheSize = c.CacheSize
	}
	if c.BatchWorkers != 0 {
		out.BatchWorkers = c.BatchWorkers
	}
	if c.MaxBodyBytes != 0 {
		out.MaxBodyBytes = c.MaxBodyBytes
	}
	if c.RequestTimeoutSeconds != 0 {
		out.RequestTimeoutSeconds = c.RequestTimeoutSeconds
	}
	if c.ShutdownTimeoutSeconds != 0 {
		out.ShutdownTimeoutSeconds = c.ShutdownTimeoutSeconds
	}
	if c.RateLimit != 0 {
		out.RateLimit = c.RateLimit
	}
	if c.RateLimitBurst != 0 {
		out.RateLimitBurst = c.RateLimitBurst
	}
	if c.CORSEnabled != nil {
		v := *c.CORSEnabled
		out.CORSEnabled = &v
	}
	if len(c.CORSAllowedOrigins) > 0 {
		out.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if len(c.CORSAllowedMethods) > 0 {
		out.CORSAllowedMethods = c.CORSAllowedMethods
	}
	if len(c.CORSAllowedHeaders) > 0 {
		out.CORSAllowedHeaders = c.CORSAllowedHeaders
	}
	return out
}

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "CROPRECD_"

// FromEnv reads CROPRECD_* variables through getenv. Unset or malformed
// numeric variables are left unspecified; malformed values are reported.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config
	var errs []string
	str := func(name string) string { return strings.TrimSpace(getenv(EnvPrefix + name)) }
	num := func(name string, set func(string) error) {
		if v := str(name); v != "" {
			if err := set(v); err != nil {
				errs = append(errs, fmt.Sprintf("%s%s=%q", EnvPrefix, name, v))
			}
		}
	}

	cfg.Addr = str("ADDR")
	cfg.ArtifactsDir = str("ARTIFACTS_DIR")
	cfg.LogLevel = str("LOG_LEVEL")
	cfg.LogFormat = str("LOG_FORMAT")
	num("API_REVISION", func(v string) (err error) { cfg.APIRevision, err = strconv.Atoi(v); return })
	num("CACHE_SIZE", func(v string) (err error) { cfg.CacheSize, err = strconv.Atoi(v); return })
	num("BATCH_WORKERS", func(v string) (err error) { cfg.BatchWorkers, err = strconv.Atoi(v); return })
	num("MAX_BODY_BYTES", func(v string) (err error) { cfg.MaxBodyBytes, err = strconv.ParseInt(v, 10, 64); return })
	num("REQUEST_TIMEOUT_SECONDS", func(v string) (err error) {
		cfg.RequestTimeoutSeconds, err = strconv.ParseInt(v, 10, 64)
		return
	})
	num("RATE_LIMIT", func(v string) (err error) { cfg.RateLimit, err = strconv.ParseFloat(v, 64); return })
	num("CORS_ENABLED", func(v string) error {
		b, err := strconv.ParseBool(v)
		if err == nil {
			cfg.CORSEnabled = &b
		}
		return err
	})
	cfg.CORSAllowedOrigins = SplitCSV(str("CORS_ALLOWED_ORIGINS"))

	if len(errs) > 0 {
		return cfg, fmt.Errorf("invalid environment: %s", strings.Join(errs, ", "))
	}
	return cfg, nil
}

// SplitCSV splits a comma-separated list, trimming blanks and dropping empties.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
