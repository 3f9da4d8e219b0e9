// Package internalcheck provides internal validation and testing utilities.
//
// This package contains source-level policy checks for the pairing codec. It
// is not intended for external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the pairing library. Use the public API
// provided by pkg/pairing instead.
package internalcheck
