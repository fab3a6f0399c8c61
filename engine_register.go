package appcore

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// pendingRegistration holds the validated form between OTP issuance and
// verification. Credentials stay in memory only and are dropped once the
// account is created or the flow is abandoned.
type pendingRegistration struct {
	firstName string
	lastName  string
	email     string
	password  string
}

// BeginRegistration validates the sign-up form, pre-checks that the email is
// not already registered, and issues the OTP challenge. The remote account
// is NOT created here: that happens only after [Engine.VerifyOTP] succeeds
// for the same email/code pair.
func (e *Engine) BeginRegistration(ctx context.Context, firstName, lastName, email, password string) error {
	if e == nil || e.api == nil || e.sessions == nil {
		return ErrEngineNotReady
	}

	fieldErrs := FieldErrors{}
	if firstName == "" {
		fieldErrs["firstName"] = "First name is required"
	}
	if lastName == "" {
		fieldErrs["lastName"] = "Last name is required"
	}

	switch {
	case email == "":
		fieldErrs["email"] = "Email is required"
	case !validEmail(email):
		fieldErrs["email"] = "Not a valid email"
	default:
		exists, err := e.api.EmailExists(ctx, email)
		if err != nil {
			// The pre-check could not run; registration cannot proceed
			// safely against a possibly-existing account.
			e.metricInc(MetricRegistrationFailure)
			return errors.Join(ErrRegistrationFailed, err)
		}
		if exists {
			fieldErrs["email"] = "Email already registered"
		}
	}

	if password == "" {
		fieldErrs["password"] = "Password is required"
	} else if msg := e.checkPassword(password); msg != "" {
		fieldErrs["password"] = msg
	}

	if len(fieldErrs) > 0 {
		e.metricInc(MetricRegistrationValidationFailure)
		return fieldErrs
	}

	if err := e.issueChallenge(ctx, email, challengeRegistration); err != nil {
		return err
	}

	e.mu.Lock()
	e.pendingReg = &pendingRegistration{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		password:  password,
	}
	e.mu.Unlock()

	e.metricInc(MetricRegistrationStarted)
	return nil
}

// completeRegistration runs after a registration OTP verified: the single
// remote register call, then session creation, then onboarding.
func (e *Engine) completeRegistration(ctx context.Context, email string) (Route, error) {
	e.mu.Lock()
	reg := e.pendingReg
	e.mu.Unlock()

	if reg == nil || reg.email != email {
		return RouteNone, ErrNoOTPPending
	}

	if err := e.api.Register(ctx, reg.firstName, reg.lastName, reg.email, reg.password); err != nil {
		e.metricInc(MetricRegistrationFailure)
		e.log.Debug("register rejected", zap.String("email", reg.email), zap.Error(err))
		return RouteNone, errors.Join(ErrRegistrationFailed, err)
	}

	e.mu.Lock()
	e.pendingReg = nil
	e.mu.Unlock()

	if err := e.sessions.Login(ctx, reg.email); err != nil {
		e.metricInc(MetricRegistrationFailure)
		return RouteNone, errors.Join(ErrRegistrationFailed, err)
	}
	e.setState(StateAuthenticated)
	e.metricInc(MetricRegistrationSuccess)

	return RouteOnboarding, nil
}
