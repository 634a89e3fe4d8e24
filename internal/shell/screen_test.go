package shell

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{"linux", "clear", nil, true},
		{"darwin", "clear", nil, true},
		{"freebsd", "clear", nil, true},
		{"windows", "cmd", []string{"/c", "cls"}, true},
		{"plan9", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, ok := clearCommand(tt.goos)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestClearScreen_IgnoresErrors(t *testing.T) {
	orig := runCommand
	t.Cleanup(func() { runCommand = orig })

	var called []string
	runCommand = func(name string, args ...string) error {
		called = append(called, name)
		return errors.New("not found")
	}

	ClearScreen()

	if _, _, ok := clearCommand(runtime.GOOS); ok {
		assert.Len(t, called, 1)
	} else {
		assert.Empty(t, called)
	}
}
