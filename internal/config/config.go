// Package config provides configuration management for inkwell.
package config

import "log"

var AppVersion = "-unset-" // will be set at build time

// MainConfig holds the main configuration for inkwell
type MainConfig struct {
	// Web interface settings
	Web *WebConfig `json:"web"`

	// Database settings
	Database DatabaseConfig `json:"database"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	Debug      bool   `json:"debug"` // Enable gin debug mode and verbose logging
	// Secret is reserved for signing browser state. The default matches the
	// fixed value the deployment tooling supplies; override via -websecret.
	Secret string `json:"secret"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DataDir string `json:"data_dir"` // Directory for the sqlite database file
}

// DefaultSecret is a fixed deployment secret, replaced by ops at install time.
const DefaultSecret = "8BYkEfBA6O6donzWlSihBXox7C0sKR6b"

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	maincfg := &MainConfig{
		AppVersion: AppVersion,
		Web: &WebConfig{
			ListenPort: 11990,
			SSL:        false,
			Secret:     DefaultSecret,
		},
		Database: DatabaseConfig{
			DataDir: "./data",
		},
	}
	log.Printf("MainConfig initialized (version: %s)", maincfg.AppVersion)
	return maincfg
}
