// Package session provides durable signed-in identity storage for FeedRecap
// client hosts.
//
// # Architecture boundaries
//
// This package owns the [Store] (single source of truth for "who is logged in")
// and the [Session] model, plus the pluggable persistence backends (file, Redis,
// in-memory). It does NOT talk to the account service, validate credentials, or
// decide routing — those responsibilities belong to the Engine.
//
// # Failure contract
//
// Persistence failures never propagate to flows: a backend write or clear error
// is logged and swallowed, and the in-memory state still updates so the current
// session remains usable for the process lifetime. A backend read error during
// [Store.Restore] is reported as "no session".
package session
