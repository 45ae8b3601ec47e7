// Package config loads runtime settings for the web front end.
// File: config/config.go
package config

import (
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"go-campus-events/logger"
)

// Config holds every runtime setting the application reads. Values are
// resolved in layers: built-in defaults, then an optional YAML file, then
// environment variables (a .env file is loaded first if present). Later
// layers win.
type Config struct {
	// APIBaseURL is the address of the backend event-management API.
	APIBaseURL string `yaml:"api_base_url"`
	// APITimeout bounds every request to the backend.
	APITimeout time.Duration `yaml:"api_timeout"`

	ApplicationURL string `yaml:"application_url"`
	WebsocketURL   string `yaml:"websocket_url"`
	Port           string `yaml:"port"`
	SessionSecret  string `yaml:"session_secret"`
	Env            string `yaml:"env"`

	// UPI payee details used to compose payment deep links.
	UPIID        string `yaml:"upi_id"`
	UPIPayeeName string `yaml:"upi_payee_name"`
}

// defaults returns a Config populated with local-development values.
func defaults() *Config {
	return &Config{
		APIBaseURL:     "http://localhost:5000",
		APITimeout:     30 * time.Second,
		ApplicationURL: "http://localhost:8080",
		WebsocketURL:   "ws://localhost:8080/live-updates",
		Port:           "8080",
		SessionSecret:  "secret",
		Env:            "development",
		UPIID:          "campusevents@okicici",
		UPIPayeeName:   "Campus Events",
	}
}

// Load builds the effective configuration. The YAML path is optional; a
// missing file is not an error. Environment variables always take
// precedence over the file.
func Load(yamlPath string) *Config {
	cfg := defaults()

	if err := godotenv.Load(); err == nil {
		logger.Info.Println("Load: .env file applied")
	}

	if yamlPath != "" {
		if data, err := os.ReadFile(yamlPath); err == nil { // #nosec G304
			if err := yaml.Unmarshal(data, cfg); err != nil {
				logger.Warn.Printf("Load: ignoring malformed config file %s: %v", yamlPath, err)
			} else {
				logger.Info.Printf("Load: applied config file %s", yamlPath)
			}
		}
	}

	applyEnv(cfg)
	return cfg
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	setString(&cfg.APIBaseURL, "API_BASE_URL")
	setString(&cfg.ApplicationURL, "APPLICATION_URL")
	setString(&cfg.WebsocketURL, "WEBSOCKET_URL")
	setString(&cfg.Port, "PORT")
	setString(&cfg.SessionSecret, "SESSION_SECRET")
	setString(&cfg.Env, "ENV")
	setString(&cfg.UPIID, "UPI_ID")
	setString(&cfg.UPIPayeeName, "UPI_PAYEE_NAME")

	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			logger.Warn.Printf("applyEnv: invalid API_TIMEOUT %q: %v", raw, err)
		} else {
			cfg.APITimeout = d
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
