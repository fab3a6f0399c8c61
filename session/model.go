package session

// Session defines a public type used by appcore APIs.
//
// Session instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Session struct {
	// Email is the account identity acting as the session token.
	Email string `json:"email"`

	// DeviceID is assigned the first time a session is persisted on a
	// device and is carried across logins on the same backend.
	DeviceID string `json:"device_id"`

	CreatedAt int64 `json:"created_at"`
}
