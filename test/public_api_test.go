package test

import (
	"context"
	"testing"

	appcore "github.com/feedrecap/appcore"
	"github.com/feedrecap/appcore/provider"
	"github.com/feedrecap/appcore/rest"
	"github.com/feedrecap/appcore/session"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = appcore.New

	var _ *appcore.Engine
	var _ appcore.Config
	var _ appcore.LoginResult
	var _ appcore.FieldErrors
	var _ appcore.Route
	var _ appcore.FlowState
	var _ appcore.AccountService
	var _ appcore.MetricsSnapshot
	var _ *appcore.Dashboard
	var _ *appcore.Feed

	var _ error = appcore.ErrLoginFailed
	var _ error = appcore.ErrRegistrationFailed
	var _ error = appcore.ErrOAuthFailed
	var _ error = appcore.ErrOTPIncomplete
	var _ error = appcore.ErrOTPMismatch
	var _ error = appcore.ErrNoOTPPending
	var _ error = appcore.ErrNoSession
	var _ error = appcore.ErrPreferencesIncomplete
	var _ error = appcore.ErrPreferencesInvalid
	var _ error = rest.ErrUnavailable

	var _ func(*appcore.Engine, context.Context) (appcore.Route, string) = (*appcore.Engine).Bootstrap
	var _ func(*appcore.Engine, context.Context, string, string) (*appcore.LoginResult, error) = (*appcore.Engine).SubmitCredentials
	var _ func(*appcore.Engine, context.Context, string, string, string, string) error = (*appcore.Engine).BeginRegistration
	var _ func(*appcore.Engine, context.Context, []string) (appcore.Route, error) = (*appcore.Engine).VerifyOTP
	var _ func(*appcore.Engine, context.Context, *provider.Identity) (*appcore.LoginResult, error) = (*appcore.Engine).ExchangeOAuthToken
	var _ func(*appcore.Engine, context.Context) appcore.Route = (*appcore.Engine).Logout

	var _ session.Backend = (*session.FileBackend)(nil)
	var _ session.Backend = (*session.RedisBackend)(nil)
	var _ session.Backend = (*session.MemoryBackend)(nil)
}
