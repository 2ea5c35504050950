package lptext

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports malformed objective or constraint text.
type ParseError struct {
	Line  string // offending constraint line, when known
	Token string // offending token, when known
	Msg   string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line != "" && e.Token != "":
		return fmt.Sprintf("lptext: %s %q in %q", e.Msg, e.Token, e.Line)
	case e.Line != "":
		return fmt.Sprintf("lptext: %s: %q", e.Msg, e.Line)
	case e.Token != "":
		return fmt.Sprintf("lptext: %s %q", e.Msg, e.Token)
	}
	return "lptext: " + e.Msg
}

// Sentinel failures shared by every backend.
var (
	ErrInfeasible     = errors.New("lptext: problem is infeasible")
	ErrUnbounded      = errors.New("lptext: problem is unbounded")
	ErrIterationLimit = errors.New("lptext: iteration limit reached")
)

// BackendError wraps an opaque failure reported by a solver backend. The
// backend's own message is passed through verbatim.
type BackendError struct {
	Backend Backend
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("lptext: %s backend: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
