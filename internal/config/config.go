package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration loaded from YAML with env overrides.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Session   SessionConfig   `yaml:"session"`
	Bootstrap BootstrapConfig `yaml:"bootstrap"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	TTLHours   int    `yaml:"ttl_hours"`
}

// BootstrapConfig describes the default admin account created on first start.
type BootstrapConfig struct {
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
	AdminFullName string `yaml:"admin_full_name"`
	AdminEmail    string `yaml:"admin_email"`
}

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Session: SessionConfig{
			CookieName: "clinic_session",
			TTLHours:   24,
		},
		Bootstrap: BootstrapConfig{
			AdminUsername: "admin",
			AdminPassword: "admin123",
			AdminFullName: "Dr. Administrator",
			AdminEmail:    "admin@clinic.com",
		},
	}
}

// Load reads configuration from the file at CONFIG_PATH (or the given path
// when non-empty). A missing file is not an error; defaults apply and any
// field absent from the file keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = Default().Server.Port
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = Default().Session.CookieName
	}
	if cfg.Session.TTLHours <= 0 {
		cfg.Session.TTLHours = Default().Session.TTLHours
	}

	return cfg, nil
}

// SessionTTL returns the configured session lifetime.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}
