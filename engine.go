package appcore

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/feedrecap/appcore/provider"
	"github.com/feedrecap/appcore/session"
)

// Engine defines a public type used by appcore APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// Flow state (the pending OTP challenge and pending registration) is the one
// mutable region and is guarded internally.
type Engine struct {
	config    Config
	api       AccountService
	sessions  *session.Store
	providers *provider.Registry
	log       *zap.Logger
	metrics   *Metrics

	mu         sync.Mutex
	state      FlowState
	challenge  *otpChallenge
	pendingReg *pendingRegistration
}

// State reports the current flow position.
func (e *Engine) State() FlowState {
	if e == nil {
		return StateUnauthenticated
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Bootstrap restores a persisted session at app launch. A restored identity
// routes straight to the feed; otherwise the host shows the welcome screen.
func (e *Engine) Bootstrap(ctx context.Context) (Route, string) {
	if e == nil || e.sessions == nil {
		return RouteWelcome, ""
	}

	sess, ok := e.sessions.Restore(ctx)
	if !ok {
		e.setState(StateUnauthenticated)
		return RouteWelcome, ""
	}

	e.setState(StateAuthenticated)
	e.metricInc(MetricSessionRestored)
	e.log.Debug("session restored", zap.String("email", sess.Email))
	return RouteFeed, sess.Email
}

// Logout clears the session and resets the flow. The store completes its
// clear before the route is returned, so the host never renders an
// authenticated screen against a stale session.
func (e *Engine) Logout(ctx context.Context) Route {
	if e == nil {
		return RouteWelcome
	}

	e.sessions.Logout(ctx)

	e.mu.Lock()
	e.state = StateUnauthenticated
	e.challenge = nil
	e.pendingReg = nil
	e.mu.Unlock()

	e.metricInc(MetricLogout)
	return RouteWelcome
}

// CurrentEmail returns the signed-in identity, if any.
func (e *Engine) CurrentEmail() (string, bool) {
	if e == nil || e.sessions == nil {
		return "", false
	}
	sess, ok := e.sessions.Current()
	if !ok {
		return "", false
	}
	return sess.Email, true
}

func (e *Engine) setState(s FlowState) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// sessionEmail is the guard every authenticated data operation goes through.
func (e *Engine) sessionEmail() (string, error) {
	if e == nil || e.sessions == nil {
		return "", ErrEngineNotReady
	}
	sess, ok := e.sessions.Current()
	if !ok || sess.Email == "" {
		return "", ErrNoSession
	}
	return sess.Email, nil
}

// routeForUser resolves onboarding-vs-feed from a fresh new-user read. The
// session already exists at this point, so a failed read logs and falls back
// to the returning-user default instead of undoing the login.
func (e *Engine) routeForUser(ctx context.Context, email string) Route {
	isNew, err := e.api.IsNewUser(ctx, email)
	if err != nil {
		e.log.Warn("new-user status read failed, routing to feed",
			zap.String("email", email),
			zap.Error(err),
		)
		return RouteFeed
	}
	if isNew {
		return RouteOnboarding
	}
	return RouteFeed
}
