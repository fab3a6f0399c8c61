package appcore

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"go.uber.org/zap"
)

type challengeKind int

const (
	challengeNone challengeKind = iota
	challengePasswordReset
	challengeRegistration
)

// otpChallenge is the transient in-memory record of an issued code. It is
// never persisted and is discarded on the first successful verification.
type otpChallenge struct {
	email    string
	expected string
	kind     challengeKind
}

// RequestPasswordResetOTP asks the account service to issue a code for the
// forgot-password flow and parks the challenge for [Engine.VerifyOTP].
func (e *Engine) RequestPasswordResetOTP(ctx context.Context, email string) error {
	if e == nil || e.api == nil {
		return ErrEngineNotReady
	}
	return e.issueChallenge(ctx, email, challengePasswordReset)
}

func (e *Engine) issueChallenge(ctx context.Context, email string, kind challengeKind) error {
	code, err := e.api.SendOTP(ctx, email)
	if err != nil {
		e.metricInc(MetricOTPIssueFailure)
		e.log.Debug("otp issuance failed", zap.String("email", email), zap.Error(err))
		return errors.Join(ErrOTPUnavailable, err)
	}

	e.mu.Lock()
	e.challenge = &otpChallenge{
		email:    email,
		expected: code,
		kind:     kind,
	}
	e.state = StateOTPPending
	e.mu.Unlock()

	e.metricInc(MetricOTPIssued)
	return nil
}

// VerifyOTP compares the entered digits against the pending challenge.
//
// Any blank slot reports [ErrOTPIncomplete] without contacting the service.
// A mismatch reports [ErrOTPMismatch] and keeps the challenge pending with
// unlimited retries. On a match the challenge is discarded: a password-reset
// challenge simply closes (RouteNone), a registration challenge performs the
// one-and-only remote register call and signs the new account in.
func (e *Engine) VerifyOTP(ctx context.Context, digits []string) (Route, error) {
	if e == nil || e.api == nil {
		return RouteNone, ErrEngineNotReady
	}

	e.mu.Lock()
	challenge := e.challenge
	e.mu.Unlock()

	if challenge == nil {
		return RouteNone, ErrNoOTPPending
	}

	if len(digits) != e.config.OTP.Digits {
		e.metricInc(MetricOTPIncomplete)
		return RouteNone, ErrOTPIncomplete
	}
	for _, d := range digits {
		if d == "" {
			e.metricInc(MetricOTPIncomplete)
			return RouteNone, ErrOTPIncomplete
		}
	}

	entered := strings.Join(digits, "")
	if subtle.ConstantTimeCompare([]byte(entered), []byte(challenge.expected)) != 1 {
		e.metricInc(MetricOTPMismatch)
		return RouteNone, ErrOTPMismatch
	}

	e.mu.Lock()
	e.challenge = nil
	e.mu.Unlock()
	e.metricInc(MetricOTPVerified)

	switch challenge.kind {
	case challengeRegistration:
		return e.completeRegistration(ctx, challenge.email)
	default:
		e.setState(StateCredentialEntry)
		return RouteNone, nil
	}
}
