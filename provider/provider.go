// Package provider defines the pluggable OAuth capability consumed by the
// authentication engine. Implementations return identity facts only and must
// not create accounts, write sessions, or decide routing.
package provider

import "context"

// Identity is a normalized profile obtained from an external provider.
type Identity struct {
	// Provider is the identifier of the issuing provider (e.g. "google").
	Provider string

	Email         string
	FirstName     string
	LastName      string
	EmailVerified bool
}

// Provider is the contract every external auth provider must implement.
type Provider interface {
	// Name returns the provider identifier (e.g. "google").
	Name() string

	// AuthCodeURL returns the authorization URL to send the user to.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for a verified Identity.
	Exchange(ctx context.Context, code string) (*Identity, error)
}
