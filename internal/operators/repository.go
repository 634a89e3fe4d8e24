package operators

import "context"

type Repository interface {
	// Authenticate calls the AuthenticateOperator routine and returns every
	// row of its result set. Wrong credentials or a blocked operator yield
	// no rows, not an error.
	Authenticate(ctx context.Context, username, passwordHash string) ([]Info, error)

	// Upsert inserts op, or updates the operator with the same username, and
	// returns it with ID set.
	Upsert(ctx context.Context, op *Operator) (*Operator, error)
}
