package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-editor/internal/runtimeconfig"
)

func TestConfigValidate_DefaultsAreValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStorageProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "redis"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RequiresDSNForBun(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "bun"
	cfg.Storage.DSN = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestConfigValidate_RequiresBaseURLForHTTP(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Provider = "http"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrRemoteBaseURLRequired) {
		t.Fatalf("expected ErrRemoteBaseURLRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsNonPositiveAutosaveInterval(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Autosave.QuietInterval = 0

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrAutosaveIntervalInvalid) {
		t.Fatalf("expected ErrAutosaveIntervalInvalid, got %v", err)
	}
}

func TestConfigValidate_AllowsZeroIntervalWhenAutosaveDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Autosave.Enabled = false
	cfg.Autosave.QuietInterval = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresStateDirWhenPersistEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Stores.Persist = true
	cfg.Stores.StateDir = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStatePathRequired) {
		t.Fatalf("expected ErrStatePathRequired, got %v", err)
	}
}
