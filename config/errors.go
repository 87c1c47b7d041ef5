package config

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by this package is an [*Error] that matches exactly one of
// these with [errors.Is].
var (
	ErrFileNotFound    = errors.New("config file not found")
	ErrMalformedLine   = errors.New("malformed line")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrKeyNotFound     = errors.New("key not found")
	ErrValueMalformed  = errors.New("value malformed")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidOptions  = errors.New("invalid options")
)

// An Error describes a failure to load a config file or to read a value from it.
type Error struct {
	// Kind is one of the Err* sentinels declared in this package.
	Kind error

	// Path is the file being loaded or the file the store was loaded from. It is empty for
	// stores read from an [io.Reader].
	Path string

	// Line is the 1-based line number of the offending line, or 0.
	Line int

	// Text is the offending line for ErrMalformedLine.
	Text string

	// Key is the key involved, when there is one.
	Key string

	// Err is the underlying cause, e.g. an *fs.PathError or a *strconv.NumError.
	Err error
}

func (e *Error) Error() string {
	sb := strings.Builder{}
	if e.Path != "" {
		sb.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d", e.Line)
		}
		sb.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	sb.WriteString(e.Kind.Error())
	if e.Key != "" {
		fmt.Fprintf(&sb, " %q", e.Key)
	} else if e.Text != "" {
		fmt.Fprintf(&sb, " %q", e.Text)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}
