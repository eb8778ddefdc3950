// Package config provides user configuration management for laptop-advisor.
//
// The settings file is YAML and holds the recommendation service address,
// request pacing and display preferences. The user's form selections are never
// persisted.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/laptop-advisor/config.yaml or $HOME/.config/laptop-advisor/config.yaml
//   - macOS: $HOME/.config/laptop-advisor/config.yaml
//   - Windows: %LOCALAPPDATA%\laptop-advisor\config.yaml
//
// # Precedence
//
// Command line flags win over the LAPTOP_ADVISOR_URL environment variable,
// which wins over the file, which wins over built-in defaults. A missing file
// is not an error.
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := service.NewClient(settings.Service.BaseURL)
//	client.SetTimeout(settings.Timeout())
package config
