package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		option   string
		wantExit bool
		wantOut  string
	}{
		{"U", false, "Menu UTILIZADOR\n"},
		{"u", false, "Menu UTILIZADOR\n"},
		{"P", false, "Menu PRODUTO\n"},
		{"b", false, "Menu BACKUP\n"},
		{" S ", true, "O BackOffice vai terminar\n"},
		{"s", true, "O BackOffice vai terminar\n"},
		{"Sair", false, "Opção <Sair> inválida\n"},
		{"  q", false, "Opção <  q> inválida\n"},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			app, out := newTestApp(&fakeAuth{}, "")
			app.info = alice

			exit := app.dispatch(context.Background(), tt.option)

			assert.Equal(t, tt.wantExit, exit)
			assert.Equal(t, tt.wantOut, out.String())
			assert.True(t, app.isLoggedIn())
		})
	}
}

func TestDispatch_LogoutForgetsOperator(t *testing.T) {
	app, _ := newTestApp(&fakeAuth{}, "")
	app.info = alice

	exit := app.dispatch(context.Background(), "l")

	assert.False(t, exit)
	assert.False(t, app.isLoggedIn())
}

func TestMenu_PrintsAllOptions(t *testing.T) {
	app, out := newTestApp(&fakeAuth{}, "U\n")
	app.info = alice

	exit, err := app.menu(context.Background())

	assert.NoError(t, err)
	assert.False(t, exit)
	for _, o := range menuOptions {
		assert.Contains(t, out.String(), o)
	}
	assert.Contains(t, out.String(), "\nBem vindo Alice\n")
	assert.Contains(t, out.String(), ">> ")
}
