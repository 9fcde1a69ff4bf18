package csvcut

import (
	"errors"
	"fmt"
)

// Kind classifies a failure and selects the process exit code reported for it.
type Kind int

const (
	// KindInternal marks an impossible automaton state.
	KindInternal Kind = iota
	// KindMissingArgs is returned when the delimiter or every column argument is absent.
	KindMissingArgs
	// KindDelimiter is returned for an empty delimiter argument.
	KindDelimiter
	// KindColumn is returned for a column argument that is not an unsigned integer or exceeds MaxColumns.
	KindColumn
	// KindWrite is returned when the output rejects or shortens a write.
	KindWrite
	// KindRead is returned when the input fails with anything other than io.EOF.
	KindRead
)

// Exit codes reported by the csvcut command. They are part of the command's
// interface and must not be renumbered.
const (
	ExitOK          = 0
	ExitMissingArgs = 1
	ExitDelimiter   = 2
	ExitInternal    = 3
	ExitColumn      = 4
	ExitWrite       = 5
	ExitRead        = 6
)

var (
	// ErrMissingArgs is returned when fewer than two positional arguments are given.
	ErrMissingArgs = errors.New("csvcut: this command requires at least two arguments")
	// ErrEmptyDelimiter is returned when the delimiter argument is empty.
	ErrEmptyDelimiter = errors.New("csvcut: the delimiter must be non-empty")
	// ErrColumnSyntax is returned when a column argument is not an unsigned integer.
	ErrColumnSyntax = errors.New("csvcut: the column argument is not an unsigned integer")
	// ErrColumnRange is returned when a column argument is not below MaxColumns.
	ErrColumnRange = errors.New("csvcut: the column number is out of range")
	// ErrUnknownState is returned when the automaton is handed a state outside its table.
	ErrUnknownState = errors.New("csvcut: unknown automaton state")
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindMissingArgs:
		return "missing_args"
	case KindDelimiter:
		return "delimiter"
	case KindColumn:
		return "column"
	case KindWrite:
		return "write"
	case KindRead:
		return "read"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ExitCode returns the process exit code documented for k.
func (k Kind) ExitCode() int {
	switch k {
	case KindMissingArgs:
		return ExitMissingArgs
	case KindDelimiter:
		return ExitDelimiter
	case KindColumn:
		return ExitColumn
	case KindWrite:
		return ExitWrite
	case KindRead:
		return ExitRead
	default:
		return ExitInternal
	}
}

// Error carries the Kind of a failure together with its cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("csvcut: %s", e.Message)
	}
	return fmt.Sprintf("csvcut: %s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying Err so Error participates in errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// ArgError reports which positional argument was rejected.
type ArgError struct {
	// Position is the 1-based index of the argument, not counting the program name.
	Position int
	Arg      string
	Err      error
}

func (e *ArgError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("argument %d (%q): %v", e.Position, e.Arg, e.Err)
}

// Unwrap returns the underlying Err.
func (e *ArgError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf reports the Kind attached to err. Errors that did not originate in
// this package are classified as KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrMissingArgs):
		return KindMissingArgs
	case errors.Is(err, ErrEmptyDelimiter):
		return KindDelimiter
	case errors.Is(err, ErrColumnSyntax), errors.Is(err, ErrColumnRange):
		return KindColumn
	}
	return KindInternal
}

// ExitCode maps err to the documented process exit code; nil maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return KindOf(err).ExitCode()
}
