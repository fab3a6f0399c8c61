package appcore

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// SubmitCredentials runs the password login flow. Field validation happens
// first and short-circuits without any network call; a remote rejection or
// transport failure surfaces as [ErrLoginFailed] with no session created.
// On success the session store is written before the route is resolved.
func (e *Engine) SubmitCredentials(ctx context.Context, email, password string) (*LoginResult, error) {
	if e == nil || e.api == nil || e.sessions == nil {
		return nil, ErrEngineNotReady
	}

	e.setState(StateCredentialEntry)

	fieldErrs := FieldErrors{}
	if email == "" {
		fieldErrs["email"] = "Email is required"
	} else if !validEmail(email) {
		fieldErrs["email"] = "Invalid email"
	}
	if password == "" {
		fieldErrs["password"] = "Password is required"
	}
	if len(fieldErrs) > 0 {
		e.metricInc(MetricLoginValidationFailure)
		return nil, fieldErrs
	}

	if err := e.api.Login(ctx, email, password); err != nil {
		e.metricInc(MetricLoginFailure)
		e.log.Debug("login rejected", zap.String("email", email), zap.Error(err))
		return nil, errors.Join(ErrLoginFailed, err)
	}

	if err := e.sessions.Login(ctx, email); err != nil {
		e.metricInc(MetricLoginFailure)
		return nil, errors.Join(ErrLoginFailed, err)
	}
	e.setState(StateAuthenticated)
	e.metricInc(MetricLoginSuccess)

	return &LoginResult{
		Email: email,
		Route: e.routeForUser(ctx, email),
	}, nil
}
