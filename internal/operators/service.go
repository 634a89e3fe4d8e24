package operators

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/boffice/internal/cryptox"
	"github.com/dmitrijs2005/boffice/internal/dbx"
	"github.com/dmitrijs2005/boffice/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const driverName = "pgx"

// Service logs operators in. It holds the connection parameters but no
// connection: every Login dials, queries and hangs up.
type Service struct {
	dsn     string
	open    dbx.Opener
	newRepo func(dbx.DBTX) Repository
	logger  logging.Logger
}

func NewService(dsn string, logger logging.Logger) *Service {
	return &Service{
		dsn:     dsn,
		open:    sql.Open,
		newRepo: func(db dbx.DBTX) Repository { return NewPostgresRepository(db) },
		logger:  logger,
	}
}

// Login hashes password and asks the database for the matching operator.
//
// found is true only when the routine returned exactly one row; zero rows
// (bad credentials, blocked operator) and several rows (ambiguous match)
// both yield found == false with a nil error. A non-nil error means the
// database could not be reached or the call itself failed; there are no
// retries.
func (s *Service) Login(ctx context.Context, username string, password []byte) (info Info, found bool, err error) {
	hash := cryptox.HashPassword(password)

	var matches []Info
	err = dbx.WithConn(ctx, s.open, driverName, s.dsn, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		matches, err = s.newRepo(conn).Authenticate(ctx, username, hash)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	if len(matches) != 1 {
		s.logger.Debug(ctx, "no single operator matched", "username", username, "rows", len(matches))
		return nil, false, nil
	}

	return matches[0], true, nil
}
