package editor

import "github.com/goliatone/go-editor/internal/runtimeconfig"

var (
	ErrStorageProviderUnknown  = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrRemoteBaseURLRequired   = runtimeconfig.ErrRemoteBaseURLRequired
	ErrAutosaveIntervalInvalid = runtimeconfig.ErrAutosaveIntervalInvalid
	ErrRetryAttemptsInvalid    = runtimeconfig.ErrRetryAttemptsInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrStatePathRequired       = runtimeconfig.ErrStatePathRequired
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	AutosaveConfig = runtimeconfig.AutosaveConfig
	RetryConfig    = runtimeconfig.RetryConfig
	StoresConfig   = runtimeconfig.StoresConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// DefaultConfig returns opinionated defaults for an embedded deployment.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
