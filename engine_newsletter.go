package appcore

import "context"

// Newsletter fetches the latest newsletter HTML for the signed-in session.
// A missing newsletter surfaces as a [*rest.RejectedError] whose Message is
// the service's human-readable explanation.
func (e *Engine) Newsletter(ctx context.Context) (string, error) {
	email, err := e.sessionEmail()
	if err != nil {
		return "", err
	}
	return e.api.Newsletter(ctx, email)
}
