// Package appcore is the client core for FeedRecap hosts: the session store
// glue, the authentication flow controller, and the typed operations a screen
// layer calls against the account service.
//
// The package is configured once through [Builder.Build] and then used as an
// immutable [Engine]. Engine methods are safe to call from multiple
// goroutines, though client hosts typically drive one flow at a time.
//
// # Architecture boundaries
//
// appcore is the public surface. Screen rendering, navigation transitions,
// and the backend itself stay outside: the engine returns a [Route] and the
// host decides what to paint. Remote calls live in [rest], durable identity
// in [session], OAuth exchanges in [provider].
//
// # What this package must NOT do
//
//   - Persist credentials or OTP challenges; both are transient in-memory state.
//   - Create a local session before the account service confirms a login.
//   - Call the register endpoint before an OTP verification has succeeded.
//   - Cache the new-user flag; routing always derives from a fresh read.
package appcore
