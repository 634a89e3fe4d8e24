// Package cryptox holds the password digest shared by the login flow and
// operator seeding.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the SHA-256 digest of password rendered as lowercase
// hexadecimal text (64 characters). This is the form stored in the
// operators table and expected by the AuthenticateOperator routine.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}
