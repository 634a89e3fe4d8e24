package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/boffice/internal/common"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// ReadLine prints prompt to w and reads one line from reader with the line
// terminator removed; other whitespace is kept. A final line without a
// terminator is returned as is. At end of input it returns
// common.ErrorInputClosed.
func ReadLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", common.ErrorInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prints prompt to w and reads a password. On a terminal the
// input is not echoed and a newline is printed afterwards; otherwise a plain
// line is read from reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func ReadPassword(reader *bufio.Reader, fd int, prompt string, w io.Writer) ([]byte, error) {
	if fd < 0 || !isTerminal(fd) {
		line, err := ReadLine(reader, prompt, w)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
