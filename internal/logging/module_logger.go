package logging

import (
	"context"

	"github.com/goliatone/go-editor/pkg/interfaces"
)

const (
	rootModule     = "editor"
	sessionModule  = "editor.session"
	autosaveModule = "editor.autosave"
	storageModule  = "editor.storage"
	storesModule   = "editor.stores"
	commandModule  = "editor.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// SessionLogger returns the logger namespace reserved for editing sessions.
func SessionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sessionModule)
}

// AutosaveLogger returns the logger namespace reserved for the autosave scheduler.
func AutosaveLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, autosaveModule)
}

// StorageLogger returns the logger namespace reserved for persistence gateways.
func StorageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storageModule)
}

// StoresLogger returns the logger namespace reserved for client state stores.
func StoresLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storesModule)
}

// CommandLogger returns the logger namespace reserved for command handlers.
func CommandLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
