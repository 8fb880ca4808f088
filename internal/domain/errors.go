package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindAlreadyExists ErrorKind = "already_exists"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Key  string // Optional: short name of the entity involved
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Key != "" {
		base += fmt.Sprintf(" (key=%s)", e.Key)
	}
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

var kindSentinels = map[ErrorKind]error{
	KindNotFound:      ErrNotFound,
	KindAlreadyExists: ErrAlreadyExists,
	KindInvalidConfig: ErrInvalidConfig,
	KindExecution:     ErrExecution,
}

// Is reports whether target is the sentinel of the error's kind, so
// errors.Is(err, ErrExecution) holds for every execution failure.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KeyOf returns the entity key attached to the outermost OpError, if any.
func KeyOf(err error) string {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Key
	}
	return ""
}
