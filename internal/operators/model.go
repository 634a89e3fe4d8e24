// Package operators authenticates backoffice operators against the database
// and manages their rows.
package operators

import "fmt"

// Info is the authenticated operator's row: column name to value, exactly as
// returned by the AuthenticateOperator routine.
type Info map[string]any

// FirstName returns the "firstname" column rendered as text, or "" when the
// routine did not return one.
func (i Info) FirstName() string {
	v, ok := i["firstname"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Operator is a row of the operators table.
type Operator struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Blocked      bool
}
