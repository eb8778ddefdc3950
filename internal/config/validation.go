package config

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/text/language"
)

// ValidateBaseURL checks that the service address is an absolute http(s) URL
// without query or fragment.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid service URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("service URL must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("service URL has no host: %q", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("service URL must not carry a query or fragment: %q", raw)
	}
	return nil
}

// ValidateRateLimit checks the request pacing values.
// A zero rate means unlimited; the burst must allow at least one request.
func ValidateRateLimit(rps float64, burst int) error {
	if rps < 0 {
		return fmt.Errorf("rate_limit must be >= 0, got %v", rps)
	}
	if burst < 1 {
		return fmt.Errorf("rate_burst must be >= 1, got %d", burst)
	}
	return nil
}

// ValidateLocale checks that locale is a well-formed BCP 47 tag
func ValidateLocale(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return nil
}

// Validate checks every setting and returns all problems joined into one error,
// or nil.
func (s *Settings) Validate() error {
	var errs []error

	if err := ValidateBaseURL(s.Service.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if s.Service.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("timeout_seconds must be > 0, got %d", s.Service.TimeoutSeconds))
	}
	if err := ValidateRateLimit(s.Service.RateLimit, s.Service.RateBurst); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateLocale(s.Display.Locale); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
