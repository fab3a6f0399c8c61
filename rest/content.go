package rest

import (
	"context"
	"net/url"
	"time"
)

// Post is one curated feed entry.
type Post struct {
	TweetID  string    `json:"tweet_id"`
	Username string    `json:"username"`
	Text     string    `json:"text"`
	Category string    `json:"category"`
	Likes    int       `json:"likes"`
	Time     time.Time `json:"time"`
}

// Posts fetches the curated posts for email. Ordering is whatever the
// service sent; the engine sorts for display.
func (c *Client) Posts(ctx context.Context, email string) ([]Post, error) {
	var out struct {
		envelope
		Data []Post `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/posts", url.Values{"email": {email}}, &out); err != nil {
		return nil, err
	}
	if out.Code != 0 {
		return nil, reject("/api/posts", out.envelope)
	}
	return out.Data, nil
}

// Newsletter fetches the latest newsletter HTML for email. When none exists
// the service answers a non-zero code with a human-readable message.
func (c *Client) Newsletter(ctx context.Context, email string) (string, error) {
	var out struct {
		envelope
		Newsletter string `json:"newsletter"`
	}
	if err := c.getJSON(ctx, "/getNewsletter", url.Values{"email": {email}}, &out); err != nil {
		return "", err
	}
	if out.Code != 0 {
		return "", reject("/getNewsletter", out.envelope)
	}
	return out.Newsletter, nil
}
