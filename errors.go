package appcore

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the flow engine.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrLoginFailed is an exported constant or variable used by the flow engine.
	// Remote rejections and transport failures both collapse into it; the
	// cause stays attached for logs.
	ErrLoginFailed = errors.New("login failed")
	// ErrRegistrationFailed is an exported constant or variable used by the flow engine.
	ErrRegistrationFailed = errors.New("registration failed")
	// ErrOAuthFailed is an exported constant or variable used by the flow engine.
	ErrOAuthFailed = errors.New("oauth sign-in failed")
	// ErrOTPUnavailable is an exported constant or variable used by the flow engine.
	ErrOTPUnavailable = errors.New("failed to send otp")
	// ErrOTPIncomplete is an exported constant or variable used by the flow engine.
	ErrOTPIncomplete = errors.New("incomplete otp")
	// ErrOTPMismatch is an exported constant or variable used by the flow engine.
	ErrOTPMismatch = errors.New("wrong otp")
	// ErrNoOTPPending is an exported constant or variable used by the flow engine.
	ErrNoOTPPending = errors.New("no otp challenge pending")
	// ErrNoSession is an exported constant or variable used by the flow engine.
	ErrNoSession = errors.New("no signed-in session")
	// ErrPreferencesIncomplete is an exported constant or variable used by the flow engine.
	ErrPreferencesIncomplete = errors.New("select at least one category and one delivery time")
	// ErrPreferencesInvalid is an exported constant or variable used by the flow engine.
	ErrPreferencesInvalid = errors.New("unknown category or delivery time")
)
