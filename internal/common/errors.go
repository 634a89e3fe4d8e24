// Package common defines shared sentinel errors and small helpers used across
// the backoffice packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Seeding errors.
	ErrorEmptyUsername = errors.New("empty username")
	ErrorEmptyPassword = errors.New("empty password")

	// Shell errors.
	ErrorInputClosed = errors.New("input closed")
)
