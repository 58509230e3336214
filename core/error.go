package core

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ErrorKind classifies engine failures
type ErrorKind uint8

const (
	KindConfig    ErrorKind = iota + 1 // bad document, registration or pairing
	KindLookup                         // named resource does not exist
	KindInvariant                      // internal state is inconsistent
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLookup:
		return "lookup"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Causes wrapped by Error so callers can match with errors.Is
var (
	ErrTypeNotFound     = errors.New("type not found")
	ErrDuplicateType    = errors.New("duplicate type registration")
	ErrUnknownTeam      = errors.New("unknown team")
	ErrUnknownType      = errors.New("unknown collision type")
	ErrMalformedPairing = errors.New("malformed team pairing")
	ErrHandlerSealed    = errors.New("collision handler sealed")
	ErrMissingTeam      = errors.New("team not set")
	ErrMissingTrait     = errors.New("required trait missing")
	ErrDuplicateLayer   = errors.New("duplicate layer")
	ErrUnknownLayer     = errors.New("unknown layer")
	ErrStaleEntity      = errors.New("stale entity handle")
	ErrDuplicateEntity  = errors.New("entity already in container")
	ErrInvalidDocument  = errors.New("invalid document")
)

// Detail is a named diagnostic value attached to an Error
type Detail struct {
	Key   string
	Value any
}

// Error carries origin, message and diagnostic details of a failure
// Recoverable errors abort the single operation that raised them
// Non-recoverable errors must terminate the affected scene
type Error struct {
	Kind        ErrorKind
	Op          string
	Msg         string
	Details     []Detail
	Recoverable bool
	Err         error
}

// ConfigError creates a recoverable configuration error
func ConfigError(op, msg string, cause error) *Error {
	return &Error{Kind: KindConfig, Op: op, Msg: msg, Recoverable: true, Err: cause}
}

// LookupError creates a recoverable lookup error
func LookupError(op, msg string, cause error) *Error {
	return &Error{Kind: KindLookup, Op: op, Msg: msg, Recoverable: true, Err: cause}
}

// InvariantError creates a non-recoverable error
func InvariantError(op, msg string, cause error) *Error {
	return &Error{Kind: KindInvariant, Op: op, Msg: msg, Recoverable: false, Err: cause}
}

// Fatal marks the error non-recoverable and returns it
func (e *Error) Fatal() *Error {
	e.Recoverable = false
	return e
}

// With appends a named detail and returns the error for chaining
func (e *Error) With(key string, value any) *Error {
	e.Details = append(e.Details, Detail{Key: key, Value: value})
	return e
}

// Detail returns the first detail recorded under key
func (e *Error) Detail(key string) (any, bool) {
	for _, d := range e.Details {
		if d.Key == key {
			return d.Value, true
		}
	}
	return nil, false
}

func (e *Error) Error() string {
	msg := e.Msg + " in " + e.Op
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Elucidate renders the full multi-line diagnostic report
func (e *Error) Elucidate() string {
	var b strings.Builder
	if e.Recoverable {
		b.WriteString("Recoverable ")
	} else {
		b.WriteString("Non-recoverable ")
	}
	fmt.Fprintf(&b, "%s error occurred: %s", e.Kind, e.Error())
	for _, d := range e.Details {
		fmt.Fprintf(&b, "\n   + %s = %v", d.Key, d.Value)
	}
	b.WriteByte('\n')
	return b.String()
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", e.Kind.String())
	enc.AddString("op", e.Op)
	enc.AddString("msg", e.Msg)
	enc.AddBool("recoverable", e.Recoverable)
	if e.Err != nil {
		enc.AddString("cause", e.Err.Error())
	}
	for _, d := range e.Details {
		if err := enc.AddReflected(d.Key, d.Value); err != nil {
			return err
		}
	}
	return nil
}

// AsError extracts an engine Error from an error chain
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsRecoverable reports whether err may be handled by aborting one operation
// Errors that are not engine errors are treated as non-recoverable
func IsRecoverable(err error) bool {
	if e, ok := AsError(err); ok {
		return e.Recoverable
	}
	return false
}
