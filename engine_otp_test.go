package appcore

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func digitsOf(code string) []string {
	return strings.Split(code, "")
}

func TestVerifyOTPWithoutChallenge(t *testing.T) {
	engine := newTestEngine(t, newMockAccountService())

	_, err := engine.VerifyOTP(context.Background(), digitsOf("482913"))
	if !errors.Is(err, ErrNoOTPPending) {
		t.Fatalf("expected ErrNoOTPPending, got %v", err)
	}
}

func TestVerifyOTPBlankSlotSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	engine := newTestEngine(t, api)

	if err := engine.RequestPasswordResetOTP(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordResetOTP failed: %v", err)
	}
	before := api.totalCalls()

	digits := digitsOf("482913")
	digits[3] = ""
	_, err := engine.VerifyOTP(ctx, digits)
	if !errors.Is(err, ErrOTPIncomplete) {
		t.Fatalf("expected ErrOTPIncomplete, got %v", err)
	}
	if api.totalCalls() != before {
		t.Fatalf("expected no remote calls during incomplete verify, got %d extra", api.totalCalls()-before)
	}
	if engine.State() != StateOTPPending {
		t.Fatalf("expected challenge still pending, got %v", engine.State())
	}
}

func TestVerifyOTPMismatchKeepsChallengePending(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	api.otp = "482913"
	engine := newTestEngine(t, api)

	if err := engine.RequestPasswordResetOTP(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordResetOTP failed: %v", err)
	}

	_, err := engine.VerifyOTP(ctx, digitsOf("482914"))
	if !errors.Is(err, ErrOTPMismatch) {
		t.Fatalf("expected ErrOTPMismatch, got %v", err)
	}
	if engine.State() != StateOTPPending {
		t.Fatalf("expected challenge still pending after mismatch, got %v", engine.State())
	}

	// Retries are unlimited: the same challenge still verifies.
	route, err := engine.VerifyOTP(ctx, digitsOf("482913"))
	if err != nil {
		t.Fatalf("VerifyOTP after mismatch failed: %v", err)
	}
	if route != RouteNone {
		t.Fatalf("expected no route from reset verification, got %v", route)
	}
	if engine.State() != StateCredentialEntry {
		t.Fatalf("expected credential entry after reset verify, got %v", engine.State())
	}
}

func TestVerifyOTPChallengeDiscardedAfterSuccess(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	api.otp = "482913"
	engine := newTestEngine(t, api)

	if err := engine.RequestPasswordResetOTP(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordResetOTP failed: %v", err)
	}
	if _, err := engine.VerifyOTP(ctx, digitsOf("482913")); err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}

	if _, err := engine.VerifyOTP(ctx, digitsOf("482913")); !errors.Is(err, ErrNoOTPPending) {
		t.Fatalf("expected ErrNoOTPPending on replay, got %v", err)
	}
}

func TestRequestPasswordResetOTPIssueFailure(t *testing.T) {
	api := newMockAccountService()
	api.sendOTPErr = errors.New("smtp down")
	engine := newTestEngine(t, api)

	err := engine.RequestPasswordResetOTP(context.Background(), "alice@example.com")
	if !errors.Is(err, ErrOTPUnavailable) {
		t.Fatalf("expected ErrOTPUnavailable, got %v", err)
	}
	if engine.State() == StateOTPPending {
		t.Fatal("expected no pending challenge after issue failure")
	}
}

func TestVerifyOTPWrongLengthIsIncomplete(t *testing.T) {
	ctx := context.Background()
	api := newMockAccountService()
	engine := newTestEngine(t, api)

	if err := engine.RequestPasswordResetOTP(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordResetOTP failed: %v", err)
	}

	if _, err := engine.VerifyOTP(ctx, digitsOf("4829")); !errors.Is(err, ErrOTPIncomplete) {
		t.Fatalf("expected ErrOTPIncomplete for short entry, got %v", err)
	}
}
