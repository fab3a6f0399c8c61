package appcore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/feedrecap/appcore/rest"
	"github.com/feedrecap/appcore/session"
)

// mockAccountService scripts the remote account service and counts every
// call, so tests can assert which network operations ran.
type mockAccountService struct {
	mu    sync.Mutex
	calls map[string]int

	loginErr       error
	registerErr    error
	lastRegister   []string
	emailExists    bool
	emailExistsErr error
	isNewUser      bool
	isNewUserErr   error
	otp            string
	sendOTPErr     error

	details       rest.UserDetails
	detailsErr    error
	updateErr     error
	lastUpdate    []string
	prefs         rest.Preferences
	prefsErr      error
	submitted     *rest.Preferences
	submitErr     error
	total         int
	posts         []rest.Post
	postsErr      error
	newsletter    string
	newsletterErr error
}

func newMockAccountService() *mockAccountService {
	return &mockAccountService{
		calls: make(map[string]int),
		otp:   "482913",
	}
}

func (m *mockAccountService) record(name string) {
	m.mu.Lock()
	m.calls[name]++
	m.mu.Unlock()
}

func (m *mockAccountService) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockAccountService) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func (m *mockAccountService) Login(ctx context.Context, email, password string) error {
	m.record("Login")
	return m.loginErr
}

func (m *mockAccountService) Register(ctx context.Context, firstName, lastName, email, password string) error {
	m.record("Register")
	m.mu.Lock()
	m.lastRegister = []string{firstName, lastName, email, password}
	m.mu.Unlock()
	return m.registerErr
}

func (m *mockAccountService) EmailExists(ctx context.Context, email string) (bool, error) {
	m.record("EmailExists")
	return m.emailExists, m.emailExistsErr
}

func (m *mockAccountService) IsNewUser(ctx context.Context, email string) (bool, error) {
	m.record("IsNewUser")
	return m.isNewUser, m.isNewUserErr
}

func (m *mockAccountService) SendOTP(ctx context.Context, email string) (string, error) {
	m.record("SendOTP")
	return m.otp, m.sendOTPErr
}

func (m *mockAccountService) GetUserDetails(ctx context.Context, email string) (rest.UserDetails, error) {
	m.record("GetUserDetails")
	return m.details, m.detailsErr
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, email, newFirstName, newLastName, newEmail string) error {
	m.record("UpdateAccount")
	m.mu.Lock()
	m.lastUpdate = []string{email, newFirstName, newLastName, newEmail}
	m.mu.Unlock()
	return m.updateErr
}

func (m *mockAccountService) SubmitPreferences(ctx context.Context, email string, prefs rest.Preferences) error {
	m.record("SubmitPreferences")
	m.mu.Lock()
	m.submitted = &prefs
	m.mu.Unlock()
	return m.submitErr
}

func (m *mockAccountService) GetPreferences(ctx context.Context, email string) (rest.Preferences, error) {
	m.record("GetPreferences")
	return m.prefs, m.prefsErr
}

func (m *mockAccountService) UpdateCategories(ctx context.Context, email string, categories []string) error {
	m.record("UpdateCategories")
	return nil
}

func (m *mockAccountService) UpdateTimes(ctx context.Context, email string, times []string) error {
	m.record("UpdateTimes")
	return nil
}

func (m *mockAccountService) UpdateTimezone(ctx context.Context, email, timezone string) error {
	m.record("UpdateTimezone")
	return nil
}

func (m *mockAccountService) TotalNewsletters(ctx context.Context, email string) (int, error) {
	m.record("TotalNewsletters")
	return m.total, nil
}

func (m *mockAccountService) Posts(ctx context.Context, email string) ([]rest.Post, error) {
	m.record("Posts")
	return m.posts, m.postsErr
}

func (m *mockAccountService) Newsletter(ctx context.Context, email string) (string, error) {
	m.record("Newsletter")
	return m.newsletter, m.newsletterErr
}

var _ AccountService = (*mockAccountService)(nil)

func newTestEngine(t *testing.T, api AccountService) *Engine {
	t.Helper()

	engine, err := New().
		WithAccountService(api).
		WithSessionStore(session.NewStore(session.NewMemoryBackend(), zap.NewNop())).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return engine
}

func signIn(t *testing.T, engine *Engine, api *mockAccountService, email string) {
	t.Helper()

	if _, err := engine.SubmitCredentials(context.Background(), email, "hunter2a1"); err != nil {
		t.Fatalf("SubmitCredentials failed: %v", err)
	}
	api.mu.Lock()
	api.calls = make(map[string]int)
	api.mu.Unlock()
}

func TestBootstrapWithoutSessionShowsWelcome(t *testing.T) {
	engine := newTestEngine(t, newMockAccountService())

	route, email := engine.Bootstrap(context.Background())
	if route != RouteWelcome || email != "" {
		t.Fatalf("expected welcome with empty email, got %v %q", route, email)
	}
	if engine.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated state, got %v", engine.State())
	}
}

func TestBootstrapRestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	backend := session.NewMemoryBackend()
	store := session.NewStore(backend, zap.NewNop())
	if err := store.Login(ctx, "alice@example.com"); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}

	engine, err := New().
		WithAccountService(newMockAccountService()).
		WithSessionStore(session.NewStore(backend, zap.NewNop())).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	route, email := engine.Bootstrap(ctx)
	if route != RouteFeed || email != "alice@example.com" {
		t.Fatalf("expected feed for alice, got %v %q", route, email)
	}
	if engine.State() != StateAuthenticated {
		t.Fatalf("expected authenticated state, got %v", engine.State())
	}
	if got := engine.MetricsSnapshot().Counters[MetricSessionRestored]; got != 1 {
		t.Fatalf("expected 1 session restore, got %d", got)
	}
}

func TestLogoutClearsSessionAndState(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	engine := newTestEngine(t, api)
	signIn(t, engine, api, "alice@example.com")

	if route := engine.Logout(ctx); route != RouteWelcome {
		t.Fatalf("expected welcome after logout, got %v", route)
	}
	if engine.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated state, got %v", engine.State())
	}
	if _, ok := engine.CurrentEmail(); ok {
		t.Fatal("expected no current email after logout")
	}
	if route, _ := engine.Bootstrap(ctx); route != RouteWelcome {
		t.Fatalf("expected welcome on bootstrap after logout, got %v", route)
	}
}

func TestAuthenticatedOperationsRequireSession(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, newMockAccountService())

	if _, err := engine.FeedPosts(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession from FeedPosts, got %v", err)
	}
	if _, err := engine.Newsletter(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession from Newsletter, got %v", err)
	}
	if err := engine.SubmitOnboarding(ctx, []string{"Tech"}, []string{"Morning"}, ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession from SubmitOnboarding, got %v", err)
	}
	if _, err := engine.UserDetails(ctx); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession from UserDetails, got %v", err)
	}
}

func TestMetricsDisabledSnapshotsEmpty(t *testing.T) {
	api := newMockAccountService()
	engine, err := New().
		WithAccountService(api).
		WithSessionStore(session.NewStore(session.NewMemoryBackend(), zap.NewNop())).
		WithMetricsEnabled(false).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := engine.SubmitCredentials(context.Background(), "alice@example.com", "hunter2a1"); err != nil {
		t.Fatalf("SubmitCredentials failed: %v", err)
	}
	if snap := engine.MetricsSnapshot(); len(snap.Counters) != 0 {
		t.Fatalf("expected empty snapshot with metrics disabled, got %v", snap.Counters)
	}
}
