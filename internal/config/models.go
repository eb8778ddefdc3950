package config

import "time"

// CurrentVersion is the settings file format version this build reads and writes
const CurrentVersion = 1

const (
	defaultBaseURL        = "http://127.0.0.1:8000"
	defaultTimeoutSeconds = 15
	defaultRateBurst      = 1
	defaultLocale         = "en-US"
	defaultCurrency       = "Tsh"
)

// Settings represents the entire user configuration file.
// Nothing about the user's form selections is stored here.
type Settings struct {
	Version int            `yaml:"version"`
	Service *ServiceConfig `yaml:"service,omitempty"`
	Display *DisplayConfig `yaml:"display,omitempty"`
}

// ServiceConfig describes how to reach the recommendation service.
type ServiceConfig struct {
	BaseURL        string  `yaml:"base_url"`             // e.g. "http://127.0.0.1:8000"
	TimeoutSeconds int     `yaml:"timeout_seconds"`      // HTTP request timeout
	RateLimit      float64 `yaml:"rate_limit,omitempty"` // Requests per second, 0 = unlimited
	RateBurst      int     `yaml:"rate_burst,omitempty"`
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	Locale   string `yaml:"locale"`   // BCP 47 tag used for price grouping
	Currency string `yaml:"currency"` // Suffix shown after prices
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Service: defaultServiceConfig(),
		Display: defaultDisplayConfig(),
	}
}

func defaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		BaseURL:        defaultBaseURL,
		TimeoutSeconds: defaultTimeoutSeconds,
		RateBurst:      defaultRateBurst,
	}
}

func defaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Locale:   defaultLocale,
		Currency: defaultCurrency,
	}
}

// fillDefaults replaces missing sections and zero values with defaults.
func (s *Settings) fillDefaults() {
	if s.Service == nil {
		s.Service = defaultServiceConfig()
	}
	if s.Service.BaseURL == "" {
		s.Service.BaseURL = defaultBaseURL
	}
	if s.Service.TimeoutSeconds <= 0 {
		s.Service.TimeoutSeconds = defaultTimeoutSeconds
	}
	if s.Service.RateBurst < 1 {
		s.Service.RateBurst = defaultRateBurst
	}

	if s.Display == nil {
		s.Display = defaultDisplayConfig()
	}
	if s.Display.Locale == "" {
		s.Display.Locale = defaultLocale
	}
	if s.Display.Currency == "" {
		s.Display.Currency = defaultCurrency
	}
}

// Timeout returns the configured HTTP timeout.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.Service.TimeoutSeconds) * time.Second
}
