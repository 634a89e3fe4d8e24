package operators

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/boffice/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Authenticate(ctx context.Context, username, passwordHash string) ([]Info, error) {
	query := `SELECT * FROM "AuthenticateOperator"($1, $2)`

	rows, err := r.db.QueryContext(ctx, query, username, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var result []Info
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		info := make(Info, len(cols))
		for i, col := range cols {
			// text columns may arrive as raw bytes depending on the driver
			if b, ok := values[i].([]byte); ok {
				info[col] = string(b)
				continue
			}
			info[col] = values[i]
		}
		result = append(result, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, op *Operator) (*Operator, error) {
	query :=
		`INSERT INTO operators (username, firstname, lastname, email, password_hash, blocked)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (username) DO UPDATE
		 SET firstname = EXCLUDED.firstname,
		     lastname = EXCLUDED.lastname,
		     email = EXCLUDED.email,
		     password_hash = EXCLUDED.password_hash,
		     blocked = EXCLUDED.blocked
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		op.Username, op.FirstName, op.LastName, op.Email, op.PasswordHash, op.Blocked).Scan(&op.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return op, nil
}
