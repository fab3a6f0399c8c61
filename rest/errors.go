package rest

import (
	"errors"
	"fmt"
)

// ErrUnavailable is an exported constant or variable used by the account service client.
// It wraps transport failures and unexpected HTTP statuses.
var ErrUnavailable = errors.New("account service unavailable")

// RejectedError reports a request the account service understood and refused
// (non-zero envelope code).
type RejectedError struct {
	Endpoint string
	Code     int
	Message  string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s rejected with code %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("%s rejected with code %d: %s", e.Endpoint, e.Code, e.Message)
}

// IsRejected reports whether err is a service-side rejection and returns it.
func IsRejected(err error) (*RejectedError, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}
