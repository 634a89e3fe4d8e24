package shell

import (
	"context"
	"fmt"
	"strings"
)

var menuOptions = []string{
	"U - Menu 'Utilizador'",
	"P - Menu 'Produto'",
	"B - Menu 'Backup'",
	"S - Sair do BackOffice",
	"L - Logout do BackOffice",
}

// menu draws the menu once, reads one choice and acts on it. It reports
// whether the operator chose to exit.
func (a *App) menu(ctx context.Context) (bool, error) {
	a.clear()

	fmt.Fprintf(a.out, "\nBem vindo %s\n\n", a.info.FirstName())
	for _, o := range menuOptions {
		fmt.Fprintln(a.out, o)
	}
	fmt.Fprintln(a.out)

	option, err := ReadLine(a.reader, ">> ", a.out)
	if err != nil {
		return false, err
	}

	return a.dispatch(ctx, option), nil
}

// dispatch runs the action for option and reports whether to exit.
// Matching ignores case and surrounding blanks; the invalid-option message
// echoes the raw input.
func (a *App) dispatch(ctx context.Context, option string) bool {
	switch strings.ToUpper(strings.TrimSpace(option)) {
	case "U":
		fmt.Fprintln(a.out, "Menu UTILIZADOR")
	case "P":
		fmt.Fprintln(a.out, "Menu PRODUTO")
	case "B":
		fmt.Fprintln(a.out, "Menu BACKUP")
	case "S":
		fmt.Fprintln(a.out, "O BackOffice vai terminar")
		return true
	case "L":
		a.logger.Info(ctx, "operator logged out", "firstname", a.info.FirstName())
		a.info = nil
		fmt.Fprintln(a.out, "Logout efetuado")
		fmt.Fprintln(a.out)
	default:
		fmt.Fprintf(a.out, "Opção <%s> inválida\n", option)
	}
	return false
}
