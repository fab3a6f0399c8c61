package appcore

import (
	"errors"
	"time"
)

// Config defines a public type used by appcore APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API        APIConfig
	Password   PasswordPolicyConfig
	OTP        OTPConfig
	Onboarding OnboardingConfig
	Metrics    MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by appcore APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL string

	// RequestTimeout bounds every account-service call. The service never
	// enforces a deadline of its own, so zero falls back to the default
	// rather than disabling the timeout.
	RequestTimeout time.Duration

	UserAgent string
}

/*
====================================
PASSWORD POLICY CONFIG
====================================
*/

// PasswordPolicyConfig defines a public type used by appcore APIs.
//
// PasswordPolicyConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PasswordPolicyConfig struct {
	MinLength     int
	RequireLetter bool
	RequireDigit  bool
}

/*
====================================
OTP CONFIG
====================================
*/

// OTPConfig defines a public type used by appcore APIs.
//
// OTPConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type OTPConfig struct {
	// Digits is the challenge length the account service issues.
	Digits int
}

/*
====================================
ONBOARDING CONFIG
====================================
*/

// OnboardingConfig defines a public type used by appcore APIs.
//
// OnboardingConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type OnboardingConfig struct {
	// Categories and Times are the selectable sets; preference submissions
	// are validated against them.
	Categories []string
	Times      []string

	// DefaultTimezone is used when the host does not supply one. Empty
	// selects the process-local zone at submission time.
	DefaultTimezone string
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by appcore APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			RequestTimeout: 15 * time.Second,
		},
		Password: PasswordPolicyConfig{
			MinLength:     8,
			RequireLetter: true,
			RequireDigit:  true,
		},
		OTP: OTPConfig{
			Digits: 6,
		},
		Onboarding: OnboardingConfig{
			Categories: []string{
				"Politics", "Geopolitics", "Finance", "AI", "Tech",
				"Crypto", "Meme", "Sports", "Entertainment",
			},
			Times: []string{"Morning", "Afternoon", "Night"},
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if c.API.RequestTimeout < 0 {
		return errors.New("API RequestTimeout must not be negative")
	}
	if c.Password.MinLength < 1 {
		return errors.New("Password MinLength must be at least 1")
	}
	if c.OTP.Digits < 4 || c.OTP.Digits > 10 {
		return errors.New("OTP Digits must be between 4 and 10")
	}
	if len(c.Onboarding.Categories) == 0 {
		return errors.New("Onboarding Categories must not be empty")
	}
	if len(c.Onboarding.Times) == 0 {
		return errors.New("Onboarding Times must not be empty")
	}
	return nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Onboarding.Categories = append([]string(nil), cfg.Onboarding.Categories...)
	out.Onboarding.Times = append([]string(nil), cfg.Onboarding.Times...)
	return out
}
