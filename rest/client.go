package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "feedrecap-appcore/1.0"

	// maxBodyBytes bounds envelope reads; newsletter HTML is the largest
	// payload the service returns.
	maxBodyBytes = 8 << 20
)

// Options defines a public type used by appcore APIs.
//
// Options instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Options struct {
	// Timeout bounds every request. Zero selects the default; the service
	// offers no server-side deadline, so the client always enforces one.
	Timeout   time.Duration
	UserAgent string

	// HTTPClient overrides the transport, mostly for tests. Its own Timeout
	// is left untouched.
	HTTPClient *http.Client

	Logger *zap.Logger
}

// Client defines a public type used by appcore APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

// NewClient describes the newclient operation and its observable behavior.
//
// NewClient may return an error when input validation, dependency calls, or security checks fail.
// NewClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewClient(baseURL string, opts Options) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errors.New("base URL required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:   baseURL,
		http:      httpClient,
		userAgent: userAgent,
		log:       logger,
	}, nil
}

// envelope is the shared response header every endpoint carries.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// postJSON sends body as JSON and decodes the response into out. out must
// embed envelope; the code check happens in the caller via decode.
func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, endpoint, out)
}

// getJSON issues a GET with the given query values and decodes into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("account service request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	c.log.Debug("account service request",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: unexpected status %d", ErrUnavailable, endpoint, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: malformed response: %v", ErrUnavailable, endpoint, err)
	}
	return nil
}

// reject converts a decoded non-zero envelope into a RejectedError.
func reject(endpoint string, env envelope) error {
	return &RejectedError{Endpoint: endpoint, Code: env.Code, Message: env.Message}
}
