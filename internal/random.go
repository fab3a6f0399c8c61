package internal

import (
	"crypto/rand"
	"encoding/base64"
)

const passwordEntropyBytes = 24

// NewPassword returns a high-entropy password for accounts provisioned
// through an OAuth identity. These accounts never log in with it; the value
// only has to satisfy the account service and be unguessable.
func NewPassword() (string, error) {
	var raw [passwordEntropyBytes]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	// Suffix guarantees the service-side letter+digit policy regardless of
	// what the random bytes encode to.
	return base64.RawURLEncoding.EncodeToString(raw[:]) + "a1", nil
}
