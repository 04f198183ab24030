package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmFunc answers a yes/no prompt. Scripts take one as a parameter so
// tests can supply answers without a terminal.
type ConfirmFunc func(prompt string) bool

// Confirm returns a ConfirmFunc reading from r and echoing the prompt to w.
// Only a trimmed, case-insensitive "yes" confirms; anything else, including
// read errors, declines.
func Confirm(r io.Reader, w io.Writer) ConfirmFunc {
	scanner := bufio.NewScanner(r)
	return func(prompt string) bool {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(scanner.Text()), "yes")
	}
}
