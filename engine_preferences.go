package appcore

import (
	"context"
	"fmt"
	"time"

	"github.com/feedrecap/appcore/rest"
)

// SubmitOnboarding writes the initial digest preferences for a new user. At
// least one category and one delivery time are required; names are checked
// against the configured sets. An empty timezone falls back to the
// configured default, then to the host's local zone.
func (e *Engine) SubmitOnboarding(ctx context.Context, categories, times []string, timezone string) error {
	email, err := e.sessionEmail()
	if err != nil {
		return err
	}

	if len(categories) == 0 || len(times) == 0 {
		return ErrPreferencesIncomplete
	}
	if err := validateChoices(categories, e.config.Onboarding.Categories, "category"); err != nil {
		return err
	}
	if err := validateChoices(times, e.config.Onboarding.Times, "delivery time"); err != nil {
		return err
	}

	if timezone == "" {
		timezone = e.config.Onboarding.DefaultTimezone
	}
	if timezone == "" {
		timezone = time.Now().Location().String()
	}

	return e.api.SubmitPreferences(ctx, email, rest.Preferences{
		Categories: categories,
		Times:      times,
		Timezone:   timezone,
	})
}

// Preferences fetches the stored digest configuration.
func (e *Engine) Preferences(ctx context.Context) (rest.Preferences, error) {
	email, err := e.sessionEmail()
	if err != nil {
		return rest.Preferences{}, err
	}
	return e.api.GetPreferences(ctx, email)
}

// UpdateCategories replaces the subscribed categories from the settings
// screen. The non-empty and known-name rules match onboarding.
func (e *Engine) UpdateCategories(ctx context.Context, categories []string) error {
	email, err := e.sessionEmail()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return ErrPreferencesIncomplete
	}
	if err := validateChoices(categories, e.config.Onboarding.Categories, "category"); err != nil {
		return err
	}
	return e.api.UpdateCategories(ctx, email, categories)
}

// UpdateDeliveryTimes replaces the delivery time slots.
func (e *Engine) UpdateDeliveryTimes(ctx context.Context, times []string) error {
	email, err := e.sessionEmail()
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return ErrPreferencesIncomplete
	}
	if err := validateChoices(times, e.config.Onboarding.Times, "delivery time"); err != nil {
		return err
	}
	return e.api.UpdateTimes(ctx, email, times)
}

// UpdateTimezone replaces the delivery timezone.
func (e *Engine) UpdateTimezone(ctx context.Context, timezone string) error {
	email, err := e.sessionEmail()
	if err != nil {
		return err
	}
	if timezone == "" {
		return ErrPreferencesIncomplete
	}
	return e.api.UpdateTimezone(ctx, email, timezone)
}

func validateChoices(chosen, allowed []string, what string) error {
	for _, c := range chosen {
		found := false
		for _, a := range allowed {
			if c == a {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: unknown %s %q", ErrPreferencesInvalid, what, c)
		}
	}
	return nil
}
