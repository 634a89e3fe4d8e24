package shell

import (
	"os"
	"os/exec"
	"runtime"
)

// runCommand is a test seam for running the clear command.
var runCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

// clearCommand picks the terminal-clearing command for goos. ok is false on
// platforms without a known command.
func clearCommand(goos string) (name string, args []string, ok bool) {
	switch goos {
	case "linux", "darwin", "freebsd":
		return "clear", nil, true
	case "windows":
		return "cmd", []string{"/c", "cls"}, true
	}
	return "", nil, false
}

// ClearScreen clears the terminal. Failures are ignored: a menu drawn under
// old output is still usable.
func ClearScreen() {
	name, args, ok := clearCommand(runtime.GOOS)
	if !ok {
		return
	}
	_ = runCommand(name, args...)
}
