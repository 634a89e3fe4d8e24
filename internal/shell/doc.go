// Package shell provides the interactive backoffice shell.
//
// The shell has two states. While logged out it prompts for a username and
// a password (without echo when stdin is a terminal) until the database
// accepts them. Once logged in it redraws a single-letter menu and reads one
// choice per line:
//
//	U - Menu 'Utilizador'
//	P - Menu 'Produto'
//	B - Menu 'Backup'
//	S - Sair do BackOffice
//	L - Logout do BackOffice
//
// Choices are matched case-insensitively. S ends the run, L forgets the
// operator and goes back to the login prompt, and any other input is
// echoed back as invalid.
//
// The shell is started via App.Run(ctx), which blocks until the operator
// exits or an unrecoverable error (database failure, closed input) occurs.
package shell
