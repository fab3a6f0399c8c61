package internaldefs

import (
	appcore "github.com/feedrecap/appcore"
)

// CounterDef defines a public type used by appcore APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   appcore.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the flow engine.
var CounterDefs = []CounterDef{
	{ID: appcore.MetricSessionRestored, Name: "feedrecap_session_restored_total", Help: "Sessions restored at app launch."},
	{ID: appcore.MetricLoginSuccess, Name: "feedrecap_login_success_total", Help: "Successful login attempts."},
	{ID: appcore.MetricLoginFailure, Name: "feedrecap_login_failure_total", Help: "Failed login attempts."},
	{ID: appcore.MetricLoginValidationFailure, Name: "feedrecap_login_validation_failure_total", Help: "Login submissions rejected by field validation."},
	{ID: appcore.MetricOTPIssued, Name: "feedrecap_otp_issued_total", Help: "Issued OTP challenges."},
	{ID: appcore.MetricOTPIssueFailure, Name: "feedrecap_otp_issue_failure_total", Help: "Failed OTP issuance attempts."},
	{ID: appcore.MetricOTPVerified, Name: "feedrecap_otp_verified_total", Help: "Successful OTP verifications."},
	{ID: appcore.MetricOTPMismatch, Name: "feedrecap_otp_mismatch_total", Help: "OTP entries that did not match the challenge."},
	{ID: appcore.MetricOTPIncomplete, Name: "feedrecap_otp_incomplete_total", Help: "OTP entries rejected as incomplete."},
	{ID: appcore.MetricRegistrationStarted, Name: "feedrecap_registration_started_total", Help: "Registration flows that reached OTP issuance."},
	{ID: appcore.MetricRegistrationSuccess, Name: "feedrecap_registration_success_total", Help: "Completed registrations."},
	{ID: appcore.MetricRegistrationFailure, Name: "feedrecap_registration_failure_total", Help: "Registrations rejected by the account service."},
	{ID: appcore.MetricRegistrationValidationFailure, Name: "feedrecap_registration_validation_failure_total", Help: "Registration submissions rejected by field validation."},
	{ID: appcore.MetricOAuthSuccess, Name: "feedrecap_oauth_success_total", Help: "Successful OAuth sign-ins."},
	{ID: appcore.MetricOAuthFailure, Name: "feedrecap_oauth_failure_total", Help: "Failed OAuth sign-ins."},
	{ID: appcore.MetricLogout, Name: "feedrecap_logout_total", Help: "Logout operations."},
}
