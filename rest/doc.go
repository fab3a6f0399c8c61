// Package rest is the HTTP client for the FeedRecap account service.
//
// Every endpoint answers a JSON envelope carrying a numeric code where zero
// means success. The package translates that contract into Go values: a
// non-zero code becomes a [*RejectedError], transport and non-2xx failures
// wrap [ErrUnavailable]. Nothing here retries, caches, or decides flow
// policy — that belongs to the engine.
package rest
