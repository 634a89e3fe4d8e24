package shell

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/boffice/internal/common"
	"github.com/dmitrijs2005/boffice/internal/operators"
)

const (
	usernamePrompt = "Username      : "
	passwordPrompt = "Palavra-passe : "
)

// login prompts for credentials until the authenticator accepts them.
// Rejected credentials only print "Invalid authentication"; the reason is
// never shown.
func (a *App) login(ctx context.Context) (operators.Info, error) {
	for {
		username, err := ReadLine(a.reader, usernamePrompt, a.out)
		if err != nil {
			return nil, err
		}

		password, err := ReadPassword(a.reader, a.fd, passwordPrompt, a.out)
		if err != nil {
			return nil, err
		}

		info, found, err := a.auth.Login(ctx, username, password)
		common.WipeByteArray(password)
		if err != nil {
			a.logger.Error(ctx, "login failed", "username", username, "error", err)
			return nil, fmt.Errorf("login: %w", err)
		}

		if found {
			a.logger.Info(ctx, "operator authenticated", "username", username)
			return info, nil
		}

		a.logger.Warn(ctx, "authentication rejected", "username", username)
		fmt.Fprintln(a.out, "Invalid authentication")
		fmt.Fprintln(a.out)
	}
}
