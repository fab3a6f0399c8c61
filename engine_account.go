package appcore

import (
	"context"

	"github.com/feedrecap/appcore/rest"
)

// UserDetails fetches the profile of the signed-in account.
func (e *Engine) UserDetails(ctx context.Context) (rest.UserDetails, error) {
	email, err := e.sessionEmail()
	if err != nil {
		return rest.UserDetails{}, err
	}
	return e.api.GetUserDetails(ctx, email)
}

// UpdateAccount rewrites the profile. All fields are required and the new
// email must keep a valid shape; failures report per-field before any call.
// A successful email change re-points the local session at the new identity.
func (e *Engine) UpdateAccount(ctx context.Context, newFirstName, newLastName, newEmail string) error {
	email, err := e.sessionEmail()
	if err != nil {
		return err
	}

	fieldErrs := FieldErrors{}
	if newFirstName == "" {
		fieldErrs["firstName"] = "First name is required"
	}
	if newLastName == "" {
		fieldErrs["lastName"] = "Last name is required"
	}
	switch {
	case newEmail == "":
		fieldErrs["email"] = "Email is required"
	case !validEmail(newEmail):
		fieldErrs["email"] = "Invalid email"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	if err := e.api.UpdateAccount(ctx, email, newFirstName, newLastName, newEmail); err != nil {
		return err
	}

	if newEmail != email {
		if err := e.sessions.Login(ctx, newEmail); err != nil {
			return err
		}
	}
	return nil
}
