package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort          = 8300
	defaultEnv           = "development"
	defaultSessionCookie = "rentweb_session"
	defaultSessionTTL    = 7 * 24 * time.Hour
	defaultPageSize      = 6
)

// AppConfig holds runtime startup configuration loaded from YAML.
// One instance is resolved at startup and injected everywhere; pages never
// carry their own base URLs.
type AppConfig struct {
	Port           int           `yaml:"port"`
	Env            string        `yaml:"env"` // "development" | "production"
	APIBaseURL     string        `yaml:"api_base_url"`
	StorageBaseURL string        `yaml:"storage_base_url"`
	RedisURL       string        `yaml:"redis_url"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Session        SessionConfig `yaml:"session"`
	Site           SiteConfig    `yaml:"site"`
}

// SessionConfig configures the browser session cookie and its backing store.
type SessionConfig struct {
	Secret     string        `yaml:"secret"`
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
	Secure     bool          `yaml:"secure"`
}

// SiteConfig holds presentation defaults for the public pages.
type SiteConfig struct {
	Name     string `yaml:"name"`
	PageSize int    `yaml:"page_size"`
}

// Load reads the YAML config file, applies environment overrides and
// defaults, and validates the result. A missing file is not an error; the
// environment alone can configure the process.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env + defaults
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("RENTWEB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("RENTWEB_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("RENTWEB_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("RENTWEB_STORAGE_BASE_URL"); v != "" {
		c.StorageBaseURL = v
	}
	if v := os.Getenv("RENTWEB_REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("RENTWEB_SESSION_SECRET"); v != "" {
		c.Session.Secret = v
	}
	if v := os.Getenv("RENTWEB_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		c.AllowedOrigins = origins
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = defaultSessionCookie
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = defaultSessionTTL
	}
	if c.Site.Name == "" {
		c.Site.Name = "Sewakita Rental"
	}
	if c.Site.PageSize <= 0 {
		c.Site.PageSize = defaultPageSize
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	c.StorageBaseURL = strings.TrimRight(c.StorageBaseURL, "/")
}

func (c *AppConfig) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("api_base_url: %w", err)
	}
	if c.StorageBaseURL != "" {
		if _, err := url.ParseRequestURI(c.StorageBaseURL); err != nil {
			return fmt.Errorf("storage_base_url: %w", err)
		}
	}
	if !c.IsDev() && c.Session.Secret == "" {
		return fmt.Errorf("session.secret is required in production")
	}
	return nil
}
