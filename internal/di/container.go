package di

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/goliatone/go-editor/internal/autosave"
	"github.com/goliatone/go-editor/internal/gatewayhttp"
	"github.com/goliatone/go-editor/internal/icons"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/internal/logging/gologger"
	"github.com/goliatone/go-editor/internal/runtimeconfig"
	"github.com/goliatone/go-editor/internal/session"
	"github.com/goliatone/go-editor/internal/storage"
	"github.com/goliatone/go-editor/internal/stores"
	"github.com/goliatone/go-editor/internal/validation"
	"github.com/goliatone/go-editor/pkg/interfaces"
	"github.com/goliatone/go-editor/schema"
	repocache "github.com/goliatone/go-repository-cache/cache"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Container wires module dependencies from configuration plus overrides.
type Container struct {
	Config runtimeconfig.Config

	gateway        interfaces.Gateway
	notices        interfaces.NoticeSink
	loggerProvider interfaces.LoggerProvider

	bunDB      *bun.DB
	ownsdb     bool
	httpClient *http.Client

	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	clock        func() time.Time
	timerFactory autosave.TimerFactory

	registry    *schema.Registry
	validator   *validation.Validator
	sessions    *session.Manager
	stateStores *stores.Bundle
	iconSet     *icons.Registry
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithGateway overrides the configured persistence gateway.
func WithGateway(gw interfaces.Gateway) Option {
	return func(c *Container) {
		c.gateway = gw
	}
}

// WithNotices routes user-facing notices to the supplied sink.
func WithNotices(sink interfaces.NoticeSink) Option {
	return func(c *Container) {
		if sink != nil {
			c.notices = sink
		}
	}
}

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB injects an existing database handle instead of opening one from
// the configured DSN.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithHTTPClient overrides the http client used by the remote gateway.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Container) {
		c.httpClient = hc
	}
}

// WithCache overrides the default repository cache wiring.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithSchemaRegistry swaps the builtin page schemas for custom ones.
func WithSchemaRegistry(registry *schema.Registry) Option {
	return func(c *Container) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithClock overrides the clock used to stamp mutations.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithTimerFactory overrides autosave timer construction, mainly for tests.
func WithTimerFactory(factory autosave.TimerFactory) Option {
	return func(c *Container) {
		c.timerFactory = factory
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:  cfg,
		notices: interfaces.NoOpNotices(),
		clock:   time.Now,
		iconSet: icons.NewRegistry(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		c.registry = schema.Builtin()
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	if err := c.configureGateway(); err != nil {
		return nil, err
	}
	if err := c.configureValidator(); err != nil {
		return nil, err
	}
	c.configureStores()
	c.configureSessions()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}
	if c.Config.Logging.Provider != "gologger" {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Storage.CacheEnabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.Config.Storage.CacheTTL > 0 {
			cfg.TTL = c.Config.Storage.CacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureGateway() error {
	if c.gateway != nil {
		return nil
	}

	gatewayOpts := []storage.GatewayOption{
		storage.WithClock(c.clock),
		storage.WithRetryPolicy(storage.RetryPolicy{
			Attempts:  c.Config.Retry.Attempts,
			BaseDelay: c.Config.Retry.BaseDelay,
			MaxDelay:  c.Config.Retry.MaxDelay,
		}),
	}
	if c.loggerProvider != nil {
		gatewayOpts = append(gatewayOpts, storage.WithLogger(logging.StorageLogger(c.loggerProvider)))
	}

	switch c.Config.Storage.Provider {
	case "memory":
		c.gateway = storage.NewGateway(storage.NewMemoryRepository(), gatewayOpts...)
	case "bun":
		if c.bunDB == nil {
			sqldb, err := sql.Open("sqlite3", c.Config.Storage.DSN)
			if err != nil {
				return fmt.Errorf("di: open storage dsn: %w", err)
			}
			c.bunDB = bun.NewDB(sqldb, sqlitedialect.New())
			c.ownsdb = true
		}
		var repo storage.Repository
		if c.cacheService != nil && c.keySerializer != nil {
			repo = storage.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			repo = storage.NewBunRepository(c.bunDB)
		}
		c.gateway = storage.NewGateway(repo, gatewayOpts...)
	case "http":
		clientOpts := []gatewayhttp.Option{}
		if c.httpClient != nil {
			clientOpts = append(clientOpts, gatewayhttp.WithHTTPClient(c.httpClient))
		}
		if c.loggerProvider != nil {
			clientOpts = append(clientOpts, gatewayhttp.WithLogger(logging.StorageLogger(c.loggerProvider)))
		}
		c.gateway = gatewayhttp.New(c.Config.Storage.RemoteURL, clientOpts...)
	default:
		return fmt.Errorf("%w: %s", runtimeconfig.ErrStorageProviderUnknown, c.Config.Storage.Provider)
	}
	return nil
}

func (c *Container) configureValidator() error {
	if !c.Config.Features.Validation {
		return nil
	}
	validator, err := validation.NewValidator(c.registry)
	if err != nil {
		return err
	}
	c.validator = validator
	return nil
}

func (c *Container) configureStores() {
	bundleOpts := []stores.BundleOption{}
	if c.Config.Stores.Persist {
		bundleOpts = append(bundleOpts, stores.WithStateDir(c.Config.Stores.StateDir))
	}
	if c.loggerProvider != nil {
		bundleOpts = append(bundleOpts, stores.WithBundleLogger(logging.StoresLogger(c.loggerProvider)))
	}
	c.stateStores = stores.NewBundle(bundleOpts...)
}

func (c *Container) configureSessions() {
	sessionOpts := []session.ManagerOption{
		session.WithNotices(c.notices),
		session.WithClock(c.clock),
		session.WithAutosaveInterval(c.Config.Autosave.QuietInterval),
	}
	if !c.Config.Autosave.Enabled {
		sessionOpts = append(sessionOpts, session.WithAutosaveDisabled())
	}
	if c.Config.Features.StrictMutations {
		sessionOpts = append(sessionOpts, session.WithStrictMutations())
	}
	if c.validator != nil {
		sessionOpts = append(sessionOpts, session.WithValidator(c.validator))
	}
	if c.loggerProvider != nil {
		sessionOpts = append(sessionOpts, session.WithLoggerProvider(c.loggerProvider))
	}
	if c.timerFactory != nil {
		sessionOpts = append(sessionOpts, session.WithTimerFactory(c.timerFactory))
	}
	c.sessions = session.NewManager(c.registry, c.gateway, sessionOpts...)
}

// Gateway exposes the configured persistence gateway.
func (c *Container) Gateway() interfaces.Gateway {
	return c.gateway
}

// Sessions returns the session manager.
func (c *Container) Sessions() *session.Manager {
	return c.sessions
}

// SchemaRegistry returns the configured page schemas.
func (c *Container) SchemaRegistry() *schema.Registry {
	return c.registry
}

// Validator returns the document validator, nil when validation is disabled.
func (c *Container) Validator() *validation.Validator {
	return c.validator
}

// Stores returns the builtin state stores.
func (c *Container) Stores() *stores.Bundle {
	return c.stateStores
}

// Icons returns the icon registry.
func (c *Container) Icons() *icons.Registry {
	return c.iconSet
}

// LoggerProvider returns the configured provider, nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// NoticeSink returns the configured notice sink.
func (c *Container) NoticeSink() interfaces.NoticeSink {
	return c.notices
}

// Close releases resources owned by the container. A database handle passed
// in through WithBunDB stays open; only one opened from the DSN is closed.
func (c *Container) Close() error {
	if c.ownsdb && c.bunDB != nil {
		return c.bunDB.Close()
	}
	return nil
}
