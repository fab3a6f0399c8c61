package rest

import (
	"context"
	"net/url"
)

// UserDetails carries the profile fields the account service exposes.
type UserDetails struct {
	FirstName string
	LastName  string
}

// Login authenticates with email/password. A non-zero envelope code is
// returned as a *RejectedError; the caller decides how to surface it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var env envelope
	if err := c.postJSON(ctx, "/login", body, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		return reject("/login", env)
	}
	return nil
}

// Register creates the remote account. Callers must have completed OTP
// verification first; this client does not enforce that ordering.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) error {
	body := struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}{firstName, lastName, email, password}

	var env envelope
	if err := c.postJSON(ctx, "/register", body, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		return reject("/register", env)
	}
	return nil
}

// EmailExists reports whether an account exists for email. The service
// answers code zero for "exists" and non-zero otherwise.
func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	var env envelope
	if err := c.getJSON(ctx, "/validateEmail", url.Values{"email": {email}}, &env); err != nil {
		return false, err
	}
	return env.Code == 0, nil
}

// IsNewUser reports whether the account still needs onboarding. The flag is
// never cached; routing decisions always call this fresh.
func (c *Client) IsNewUser(ctx context.Context, email string) (bool, error) {
	var out struct {
		envelope
		IsNewUser bool `json:"isNewUser"`
	}
	if err := c.getJSON(ctx, "/isNewUser", url.Values{"email": {email}}, &out); err != nil {
		return false, err
	}
	return out.IsNewUser, nil
}

// SendOTP asks the service to issue a 6-digit code for email. The service
// returns the code in the response body as well as mailing it; the engine
// holds it for the comparison step.
func (c *Client) SendOTP(ctx context.Context, email string) (string, error) {
	body := struct {
		Email string `json:"email"`
	}{email}

	var out struct {
		envelope
		OTP string `json:"otp"`
	}
	if err := c.postJSON(ctx, "/sentOTP", body, &out); err != nil {
		return "", err
	}
	if out.OTP == "" {
		return "", reject("/sentOTP", out.envelope)
	}
	return out.OTP, nil
}

// GetUserDetails fetches the profile for email.
func (c *Client) GetUserDetails(ctx context.Context, email string) (UserDetails, error) {
	var out struct {
		envelope
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.getJSON(ctx, "/getUserDetails", url.Values{"email": {email}}, &out); err != nil {
		return UserDetails{}, err
	}
	if out.Code != 0 {
		return UserDetails{}, reject("/getUserDetails", out.envelope)
	}
	return UserDetails{FirstName: out.FirstName, LastName: out.LastName}, nil
}

// UpdateAccount rewrites the profile. email addresses the account being
// changed; newEmail may differ when the user renames the account.
func (c *Client) UpdateAccount(ctx context.Context, email, newFirstName, newLastName, newEmail string) error {
	body := struct {
		Email        string `json:"email"`
		NewFirstName string `json:"newFirstName"`
		NewLastName  string `json:"newLastName"`
		NewEmail     string `json:"newEmail"`
	}{email, newFirstName, newLastName, newEmail}

	var env envelope
	if err := c.postJSON(ctx, "/updateAccount", body, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		return reject("/updateAccount", env)
	}
	return nil
}
