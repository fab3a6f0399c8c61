package appcore

import (
	"context"

	"github.com/feedrecap/appcore/rest"
)

// Route names the navigation target the engine resolved for the host.
//
//	Docs: routing is always derived inside the engine; hosts only render it.
type Route int

const (
	// RouteNone is an exported constant or variable used by the flow engine.
	RouteNone Route = iota
	// RouteWelcome is an exported constant or variable used by the flow engine.
	RouteWelcome
	// RouteOnboarding is an exported constant or variable used by the flow engine.
	RouteOnboarding
	// RouteFeed is an exported constant or variable used by the flow engine.
	RouteFeed
)

// String describes the string operation and its observable behavior.
func (r Route) String() string {
	switch r {
	case RouteWelcome:
		return "welcome"
	case RouteOnboarding:
		return "onboarding"
	case RouteFeed:
		return "feed"
	default:
		return "none"
	}
}

// FlowState is the authentication flow position.
type FlowState int

const (
	// StateUnauthenticated is an exported constant or variable used by the flow engine.
	StateUnauthenticated FlowState = iota
	// StateCredentialEntry is an exported constant or variable used by the flow engine.
	StateCredentialEntry
	// StateOTPPending is an exported constant or variable used by the flow engine.
	StateOTPPending
	// StateAuthenticated is an exported constant or variable used by the flow engine.
	StateAuthenticated
)

// LoginResult is returned by the terminal auth operations: the identity that
// was signed in and where the host should navigate next.
type LoginResult struct {
	Email string
	Route Route
}

// AccountService is the remote collaborator contract the engine consumes.
// [rest.Client] is the production implementation; tests substitute mocks.
type AccountService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, firstName, lastName, email, password string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	IsNewUser(ctx context.Context, email string) (bool, error)
	SendOTP(ctx context.Context, email string) (string, error)

	GetUserDetails(ctx context.Context, email string) (rest.UserDetails, error)
	UpdateAccount(ctx context.Context, email, newFirstName, newLastName, newEmail string) error

	SubmitPreferences(ctx context.Context, email string, prefs rest.Preferences) error
	GetPreferences(ctx context.Context, email string) (rest.Preferences, error)
	UpdateCategories(ctx context.Context, email string, categories []string) error
	UpdateTimes(ctx context.Context, email string, times []string) error
	UpdateTimezone(ctx context.Context, email, timezone string) error
	TotalNewsletters(ctx context.Context, email string) (int, error)

	Posts(ctx context.Context, email string) ([]rest.Post, error)
	Newsletter(ctx context.Context, email string) (string, error)
}

var _ AccountService = (*rest.Client)(nil)
