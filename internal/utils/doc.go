// Package utils provides small helpers shared by the resolver transport and
// the test authority: the resty-backed HTTP client, trace identifiers, and
// JSON response writing.
package utils
