package appcore

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/feedrecap/appcore/internal"
	"github.com/feedrecap/appcore/provider"
)

// ProviderAuthURL returns the authorization URL for a registered provider.
func (e *Engine) ProviderAuthURL(providerName, state string) (string, error) {
	if e == nil || e.providers == nil {
		return "", ErrEngineNotReady
	}
	p, err := e.providers.Get(providerName)
	if err != nil {
		return "", err
	}
	return p.AuthCodeURL(state), nil
}

// SignInWithProvider completes the code-exchange path: the registered
// provider trades the authorization code for a verified identity, which is
// then run through [Engine.ExchangeOAuthToken].
func (e *Engine) SignInWithProvider(ctx context.Context, providerName, code string) (*LoginResult, error) {
	if e == nil || e.providers == nil {
		return nil, ErrEngineNotReady
	}

	p, err := e.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	identity, err := p.Exchange(ctx, code)
	if err != nil {
		e.metricInc(MetricOAuthFailure)
		return nil, errors.Join(ErrOAuthFailed, err)
	}

	return e.ExchangeOAuthToken(ctx, identity)
}

// ExchangeOAuthToken signs in an externally-verified identity. An existing
// account routes from a fresh new-user read; an unknown email is registered
// first with a generated random password, since OAuth-only accounts never
// use password login. The session is written before any route is returned.
func (e *Engine) ExchangeOAuthToken(ctx context.Context, identity *provider.Identity) (*LoginResult, error) {
	if e == nil || e.api == nil || e.sessions == nil {
		return nil, ErrEngineNotReady
	}
	if identity == nil || identity.Email == "" {
		e.metricInc(MetricOAuthFailure)
		return nil, ErrOAuthFailed
	}

	exists, err := e.api.EmailExists(ctx, identity.Email)
	if err != nil {
		e.metricInc(MetricOAuthFailure)
		return nil, errors.Join(ErrOAuthFailed, err)
	}

	if !exists {
		password, err := internal.NewPassword()
		if err != nil {
			e.metricInc(MetricOAuthFailure)
			return nil, errors.Join(ErrOAuthFailed, err)
		}
		if err := e.api.Register(ctx, identity.FirstName, identity.LastName, identity.Email, password); err != nil {
			e.metricInc(MetricOAuthFailure)
			e.log.Debug("oauth register rejected",
				zap.String("provider", identity.Provider),
				zap.String("email", identity.Email),
				zap.Error(err),
			)
			return nil, errors.Join(ErrOAuthFailed, err)
		}

		if err := e.sessions.Login(ctx, identity.Email); err != nil {
			e.metricInc(MetricOAuthFailure)
			return nil, errors.Join(ErrOAuthFailed, err)
		}
		e.setState(StateAuthenticated)
		e.metricInc(MetricOAuthSuccess)

		return &LoginResult{Email: identity.Email, Route: RouteOnboarding}, nil
	}

	if err := e.sessions.Login(ctx, identity.Email); err != nil {
		e.metricInc(MetricOAuthFailure)
		return nil, errors.Join(ErrOAuthFailed, err)
	}
	e.setState(StateAuthenticated)
	e.metricInc(MetricOAuthSuccess)

	return &LoginResult{
		Email: identity.Email,
		Route: e.routeForUser(ctx, identity.Email),
	}, nil
}
