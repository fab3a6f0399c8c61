package appcore

import (
	"context"
	"errors"

	"github.com/feedrecap/appcore/rest"
)

// Dashboard aggregates the account overview screen: stored preferences, how
// many digests have been delivered, and the latest newsletter HTML.
type Dashboard struct {
	Preferences      rest.Preferences
	TotalNewsletters int

	// LatestNewsletter is empty when none has been generated yet; the
	// service's explanation lands in NewsletterNote instead.
	LatestNewsletter string
	NewsletterNote   string
}

// FetchDashboard assembles the dashboard for the signed-in session. A
// missing newsletter is not an error here; anything else fails the whole
// fetch so the host can show one retry surface.
func (e *Engine) FetchDashboard(ctx context.Context) (*Dashboard, error) {
	email, err := e.sessionEmail()
	if err != nil {
		return nil, err
	}

	prefs, err := e.api.GetPreferences(ctx, email)
	if err != nil {
		return nil, err
	}

	total, err := e.api.TotalNewsletters(ctx, email)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		Preferences:      prefs,
		TotalNewsletters: total,
	}

	newsletter, err := e.api.Newsletter(ctx, email)
	switch {
	case err == nil:
		dash.LatestNewsletter = newsletter
	default:
		var rejected *rest.RejectedError
		if !errors.As(err, &rejected) {
			return nil, err
		}
		dash.NewsletterNote = rejected.Message
	}

	return dash, nil
}
