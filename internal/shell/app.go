package shell

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/boffice/internal/config"
	"github.com/dmitrijs2005/boffice/internal/logging"
	"github.com/dmitrijs2005/boffice/internal/operators"
	"github.com/google/uuid"
)

// Authenticator checks operator credentials. found is false when no single
// operator matched; err is reserved for failures to ask at all.
type Authenticator interface {
	Login(ctx context.Context, username string, password []byte) (info operators.Info, found bool, err error)
}

type App struct {
	auth   Authenticator
	reader *bufio.Reader
	out    io.Writer
	fd     int
	clear  func()
	logger logging.Logger

	info operators.Info
}

// NewApp wires the shell to stdin/stdout and to a database-backed
// authenticator built from cfg. Every run gets its own session id in the logs.
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	logger = logger.With("session_id", uuid.NewString())

	a := newApp(operators.NewService(cfg.DSN(), logger), os.Stdin, os.Stdout, logger)
	a.fd = int(os.Stdin.Fd())
	if !cfg.NoClear {
		a.clear = ClearScreen
	}
	return a
}

func newApp(auth Authenticator, in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		auth:   auth,
		reader: bufio.NewReader(in),
		out:    out,
		fd:     -1,
		clear:  func() {},
		logger: logger,
	}
}

func (a *App) isLoggedIn() bool {
	return a.info != nil
}

// Run alternates between the login prompt and the menu until the operator
// chooses to exit, in which case it returns nil. Database and input errors
// end the run and are returned as is.
func (a *App) Run(ctx context.Context) error {
	for {
		if !a.isLoggedIn() {
			info, err := a.login(ctx)
			if err != nil {
				return err
			}
			a.info = info
		}

		exit, err := a.menu(ctx)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}
