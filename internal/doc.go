// Package internal contains helper utilities that are intentionally private
// to appcore, currently secure random generation for provisioned account
// passwords.
//
// # What this package must NOT do
//
//   - Export types that appear in the public appcore API.
//   - Be imported by any package outside the appcore module.
package internal
