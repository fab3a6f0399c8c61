package rest

import (
	"context"
	"net/url"
)

// Preferences is the digest configuration stored per account.
type Preferences struct {
	Categories []string
	Times      []string
	Timezone   string
}

// SubmitPreferences writes the full onboarding payload in one call.
func (c *Client) SubmitPreferences(ctx context.Context, email string, prefs Preferences) error {
	body := struct {
		Email      string   `json:"email"`
		Timezone   string   `json:"timezone"`
		Categories []string `json:"categories"`
		Time       []string `json:"time"`
	}{email, prefs.Timezone, prefs.Categories, prefs.Times}

	var env envelope
	if err := c.postJSON(ctx, "/updateUserPreferences", body, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		return reject("/updateUserPreferences", env)
	}
	return nil
}

// GetPreferences assembles the stored preference set from the three
// per-field endpoints the service exposes.
func (c *Client) GetPreferences(ctx context.Context, email string) (Preferences, error) {
	query := url.Values{"email": {email}}

	var categories struct {
		envelope
		Categories []string `json:"categories"`
	}
	if err := c.getJSON(ctx, "/getCategories", query, &categories); err != nil {
		return Preferences{}, err
	}

	var times struct {
		envelope
		Time []string `json:"time"`
	}
	if err := c.getJSON(ctx, "/getTimes", query, &times); err != nil {
		return Preferences{}, err
	}

	var timezone struct {
		envelope
		Timezone string `json:"timezone"`
	}
	if err := c.getJSON(ctx, "/getTimezone", query, &timezone); err != nil {
		return Preferences{}, err
	}

	return Preferences{
		Categories: categories.Categories,
		Times:      times.Time,
		Timezone:   timezone.Timezone,
	}, nil
}

// UpdateCategories replaces the subscribed categories.
func (c *Client) UpdateCategories(ctx context.Context, email string, categories []string) error {
	body := struct {
		Email      string   `json:"email"`
		Categories []string `json:"categories"`
	}{email, categories}

	var env envelope
	if err := c.postJSON(ctx, "/updateCategories", body, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		return reject("/updateCategories", env)
	}
	return nil
}

// UpdateTimes replaces the delivery time slots.
func (c *Client) UpdateTimes(ctx context.Context, email string, times []string) error {
	body := struct {
		Email string   `json:"email"`
		Time  []string `json:"time"`
	}{email, times}

	var env envelope
	if err := c.postJSON(ctx, "/updateTimes", body, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		return reject("/updateTimes", env)
	}
	return nil
}

// UpdateTimezone replaces the delivery timezone.
func (c *Client) UpdateTimezone(ctx context.Context, email, timezone string) error {
	body := struct {
		Email    string `json:"email"`
		Timezone string `json:"timezone"`
	}{email, timezone}

	var env envelope
	if err := c.postJSON(ctx, "/updateTimezone", body, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		return reject("/updateTimezone", env)
	}
	return nil
}

// TotalNewsletters returns how many digests the account has received.
func (c *Client) TotalNewsletters(ctx context.Context, email string) (int, error) {
	var out struct {
		envelope
		Total int `json:"totalnewsletter"`
	}
	if err := c.getJSON(ctx, "/getTotalNewsletters", url.Values{"email": {email}}, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}
