package appcore

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/feedrecap/appcore/provider"
	"github.com/feedrecap/appcore/rest"
	"github.com/feedrecap/appcore/session"
)

// Builder defines a public type used by appcore APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	api       AccountService
	sessions  *session.Store
	providers *provider.Registry
	logger    *zap.Logger

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL points the engine at the account service. A [rest.Client] is
// constructed during Build unless WithAccountService supplied one.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithRequestTimeout bounds every account-service call. Zero keeps the
// engine default.
func (b *Builder) WithRequestTimeout(timeout time.Duration) *Builder {
	b.config.API.RequestTimeout = timeout
	return b
}

// WithAccountService injects the remote collaborator directly, bypassing
// the built-in REST client. Used by tests and exotic transports.
func (b *Builder) WithAccountService(api AccountService) *Builder {
	b.api = api
	return b
}

// WithSessionStore describes the withsessionstore operation and its observable behavior.
//
// WithSessionStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithSessionStore(store *session.Store) *Builder {
	b.sessions = store
	return b
}

// WithProviders registers the OAuth providers available to the exchange flow.
func (b *Builder) WithProviders(reg *provider.Registry) *Builder {
	b.providers = reg
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
//
// WithLogger does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if b.sessions == nil {
		return nil, errors.New("session store required")
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	api := b.api
	if api == nil {
		if cfg.API.BaseURL == "" {
			return nil, errors.New("account service base URL required")
		}
		client, err := rest.NewClient(cfg.API.BaseURL, rest.Options{
			Timeout:   cfg.API.RequestTimeout,
			UserAgent: cfg.API.UserAgent,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		api = client
	}

	providers := b.providers
	if providers == nil {
		providers = provider.NewRegistry()
	}

	engine := &Engine{
		config:    cfg,
		api:       api,
		sessions:  b.sessions,
		providers: providers,
		log:       logger,
		metrics:   NewMetrics(cfg.Metrics),
		state:     StateUnauthenticated,
	}

	b.built = true

	return engine, nil
}
