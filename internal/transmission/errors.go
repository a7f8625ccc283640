// file: internal/transmission/errors.go
// version: 1.0.0
// guid: 7c141d9f-c999-4b6f-97bc-a9ee4d1daa6d

package transmission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrToolNotFound signals that the transmission-remote binary is not on PATH.
var ErrToolNotFound = errors.New("transmission-remote not found in PATH; please install Transmission or use the RPC interface")

// ExitError reports a transmission-remote invocation that started but exited
// non-zero. Stderr holds the tool's raw error output.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "transmission-remote failed"
	}
	return fmt.Sprintf("%s (exit status %d)", msg, e.Code)
}
