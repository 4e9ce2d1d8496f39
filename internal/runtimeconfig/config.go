package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrStorageProviderUnknown = errors.New("editor config: storage provider is invalid")
var ErrStorageDSNRequired = errors.New("editor config: storage dsn is required for the bun provider")
var ErrRemoteBaseURLRequired = errors.New("editor config: remote base url is required for the http provider")
var ErrAutosaveIntervalInvalid = errors.New("editor config: autosave quiet interval must be positive")
var ErrRetryAttemptsInvalid = errors.New("editor config: retry attempts must be at least one")
var ErrLoggingProviderRequired = errors.New("editor config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("editor config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("editor config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("editor config: logging format is invalid")
var ErrStatePathRequired = errors.New("editor config: state directory is required when store persistence is enabled")

// Config aggregates feature flags and adapter bindings for the editor module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Autosave AutosaveConfig
	Retry    RetryConfig
	Stores   StoresConfig
	Features Features
	Logging  LoggingConfig
}

// StorageConfig selects and parameterizes the persistence gateway.
// Provider is one of "memory", "bun", or "http".
type StorageConfig struct {
	Provider     string
	DSN          string
	RemoteURL    string
	CacheEnabled bool
	CacheTTL     time.Duration
}

// AutosaveConfig controls background persistence of editing sessions.
type AutosaveConfig struct {
	Enabled       bool
	QuietInterval time.Duration
}

// RetryConfig bounds retries on explicit saves.
type RetryConfig struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// StoresConfig controls the client-side state stores.
type StoresConfig struct {
	Persist  bool
	StateDir string
}

// Features toggles module functionality.
type Features struct {
	StrictMutations bool
	Validation      bool
	Logger          bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an embedded deployment.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider:     "memory",
			CacheEnabled: false,
			CacheTTL:     time.Minute,
		},
		Autosave: AutosaveConfig{
			Enabled:       true,
			QuietInterval: 10 * time.Second,
		},
		Retry: RetryConfig{
			Attempts:  3,
			BaseDelay: 100 * time.Millisecond,
			MaxDelay:  2 * time.Second,
		},
		Stores: StoresConfig{
			Persist:  false,
			StateDir: "state",
		},
		Features: Features{
			Validation: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	provider := strings.ToLower(strings.TrimSpace(cfg.Storage.Provider))
	switch provider {
	case "memory":
	case "bun":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	case "http":
		if strings.TrimSpace(cfg.Storage.RemoteURL) == "" {
			return ErrRemoteBaseURLRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Autosave.Enabled && cfg.Autosave.QuietInterval <= 0 {
		return ErrAutosaveIntervalInvalid
	}
	if cfg.Retry.Attempts < 1 {
		return ErrRetryAttemptsInvalid
	}
	if cfg.Stores.Persist && strings.TrimSpace(cfg.Stores.StateDir) == "" {
		return ErrStatePathRequired
	}
	if cfg.Features.Logger {
		logProvider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
		if logProvider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLogProvider(logProvider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logProvider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if logProvider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func isSupportedLogProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
