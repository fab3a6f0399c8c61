package appcore

import (
	"context"
	"errors"
	"testing"
)

func TestRegistrationCreatesAccountOnlyAfterVerify(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	api.otp = "482913"
	api.emailExists = false
	engine := newTestEngine(t, api)

	err := engine.BeginRegistration(ctx, "Jane", "Doe", "jane@x.com", "S3cret-pass1")
	if err != nil {
		t.Fatalf("BeginRegistration failed: %v", err)
	}
	if api.callCount("Register") != 0 {
		t.Fatalf("expected no register call before verification, got %d", api.callCount("Register"))
	}
	if engine.State() != StateOTPPending {
		t.Fatalf("expected OTP pending state, got %v", engine.State())
	}

	route, err := engine.VerifyOTP(ctx, digitsOf("482913"))
	if err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}
	if route != RouteOnboarding {
		t.Fatalf("expected onboarding route, got %v", route)
	}
	if api.callCount("Register") != 1 {
		t.Fatalf("expected exactly one register call, got %d", api.callCount("Register"))
	}

	api.mu.Lock()
	reg := api.lastRegister
	api.mu.Unlock()
	want := []string{"Jane", "Doe", "jane@x.com", "S3cret-pass1"}
	for i := range want {
		if reg[i] != want[i] {
			t.Fatalf("register arg %d: got %q want %q", i, reg[i], want[i])
		}
	}

	if email, ok := engine.CurrentEmail(); !ok || email != "jane@x.com" {
		t.Fatalf("expected jane session, got %q ok=%v", email, ok)
	}
	if engine.State() != StateAuthenticated {
		t.Fatalf("expected authenticated state, got %v", engine.State())
	}
}

func TestBeginRegistrationValidatesFormWithoutNetwork(t *testing.T) {
	api := newMockAccountService()
	engine := newTestEngine(t, api)

	err := engine.BeginRegistration(context.Background(), "", "", "not-an-email", "")

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"firstName", "lastName", "email", "password"} {
		if fieldErrs[field] == "" {
			t.Fatalf("expected %s field error, got %v", field, fieldErrs)
		}
	}
	if api.totalCalls() != 0 {
		t.Fatalf("expected zero remote calls, got %d", api.totalCalls())
	}
}

func TestBeginRegistrationRejectsExistingEmail(t *testing.T) {
	api := newMockAccountService()
	api.emailExists = true
	engine := newTestEngine(t, api)

	err := engine.BeginRegistration(context.Background(), "Jane", "Doe", "jane@x.com", "S3cret-pass1")

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fieldErrs["email"] != "Email already registered" {
		t.Fatalf("expected duplicate email message, got %v", fieldErrs)
	}
	if api.callCount("SendOTP") != 0 {
		t.Fatal("expected no OTP issuance for a duplicate email")
	}
}

func TestBeginRegistrationRejectsWeakPassword(t *testing.T) {
	api := newMockAccountService()
	engine := newTestEngine(t, api)

	err := engine.BeginRegistration(context.Background(), "Jane", "Doe", "jane@x.com", "short")

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fieldErrs["password"] == "" {
		t.Fatalf("expected password policy message, got %v", fieldErrs)
	}
	if api.callCount("SendOTP") != 0 {
		t.Fatal("expected no OTP issuance for a weak password")
	}
}

func TestBeginRegistrationExistsCheckFailure(t *testing.T) {
	api := newMockAccountService()
	api.emailExistsErr = errors.New("service unavailable")
	engine := newTestEngine(t, api)

	err := engine.BeginRegistration(context.Background(), "Jane", "Doe", "jane@x.com", "S3cret-pass1")
	if !errors.Is(err, ErrRegistrationFailed) {
		t.Fatalf("expected ErrRegistrationFailed, got %v", err)
	}
	if api.callCount("SendOTP") != 0 {
		t.Fatal("expected no OTP issuance when the pre-check cannot run")
	}
}

func TestRegistrationRemoteRejectionAfterVerify(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	api.otp = "482913"
	api.registerErr = errors.New("Email already registered")
	engine := newTestEngine(t, api)

	if err := engine.BeginRegistration(ctx, "Jane", "Doe", "jane@x.com", "S3cret-pass1"); err != nil {
		t.Fatalf("BeginRegistration failed: %v", err)
	}

	_, err := engine.VerifyOTP(ctx, digitsOf("482913"))
	if !errors.Is(err, ErrRegistrationFailed) {
		t.Fatalf("expected ErrRegistrationFailed, got %v", err)
	}
	if _, ok := engine.CurrentEmail(); ok {
		t.Fatal("expected no session after rejected registration")
	}
}

func TestLogoutAbandonsPendingRegistration(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	engine := newTestEngine(t, api)

	if err := engine.BeginRegistration(ctx, "Jane", "Doe", "jane@x.com", "S3cret-pass1"); err != nil {
		t.Fatalf("BeginRegistration failed: %v", err)
	}
	engine.Logout(ctx)

	if _, err := engine.VerifyOTP(ctx, digitsOf("482913")); !errors.Is(err, ErrNoOTPPending) {
		t.Fatalf("expected ErrNoOTPPending after logout, got %v", err)
	}
	if api.callCount("Register") != 0 {
		t.Fatal("expected no register call for an abandoned flow")
	}
}
