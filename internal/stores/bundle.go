package stores

import (
	"path/filepath"

	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

// Bundle groups the dashboard's builtin stores under one handle.
type Bundle struct {
	User          *Store[UserState]
	Cart          *Store[CartState]
	UI            *Store[UIState]
	Filters       *Store[FilterState]
	Notifications *Store[NotificationState]
	Preferences   *Store[PreferencesState]
}

// BundleOption customizes bundle construction.
type BundleOption func(*bundleConfig)

type bundleConfig struct {
	stateDir string
	logger   interfaces.Logger
}

// WithStateDir enables file persistence, one JSON file per store under dir.
func WithStateDir(dir string) BundleOption {
	return func(cfg *bundleConfig) {
		cfg.stateDir = dir
	}
}

// WithBundleLogger routes store logging through logger.
func WithBundleLogger(logger interfaces.Logger) BundleOption {
	return func(cfg *bundleConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewBundle builds every builtin store. Without WithStateDir the stores are
// memory only, which is what tests and embedded deployments want.
func NewBundle(opts ...BundleOption) *Bundle {
	cfg := &bundleConfig{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Bundle{
		User:          NewUserStore(storeOptions[UserState](cfg)...),
		Cart:          NewCartStore(storeOptions[CartState](cfg)...),
		UI:            NewUIStore(storeOptions[UIState](cfg)...),
		Filters:       NewFilterStore(storeOptions[FilterState](cfg)...),
		Notifications: NewNotificationStore(storeOptions[NotificationState](cfg)...),
		Preferences:   NewPreferencesStore(storeOptions[PreferencesState](cfg)...),
	}
}

// ResetAll restores every store to its initial value, the sign-out path.
func (b *Bundle) ResetAll() error {
	resets := []func() error{
		b.User.Reset,
		b.Cart.Reset,
		b.UI.Reset,
		b.Filters.Reset,
		b.Notifications.Reset,
		b.Preferences.Reset,
	}
	for _, reset := range resets {
		if err := reset(); err != nil {
			return err
		}
	}
	return nil
}

func storeOptions[T any](cfg *bundleConfig) []Option[T] {
	opts := []Option[T]{WithLogger[T](cfg.logger)}
	if cfg.stateDir != "" {
		opts = append(opts, withPathPersister[T](cfg.stateDir))
	}
	return opts
}

// withPathPersister defers path construction until the store name is known.
func withPathPersister[T any](dir string) Option[T] {
	return func(s *Store[T]) {
		s.persister = NewFilePersister[T](filepath.Join(dir, s.name+".json"))
	}
}
