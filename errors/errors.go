package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the ownership lifecycle the error occurred
type Phase string

const (
	PhaseAudit   Phase = "audit"   // close-time leak auditing
	PhaseCompile Phase = "compile" // guest module compilation
	PhaseGuest   Phase = "guest"   // guest runtime operations
)

// Kind categorizes the error
type Kind string

const (
	KindLeak          Kind = "leak"
	KindLoad          Kind = "load"
	KindInstantiation Kind = "instantiation"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(" for ")
		b.WriteString(e.Resource)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Resource sets the name of the resource involved
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Leaked creates a leak-audit error for resources still live at close
func Leaked(count int) *Error {
	return &Error{
		Phase:  PhaseAudit,
		Kind:   KindLeak,
		Detail: fmt.Sprintf("%d resource(s) still owned at close", count),
		Value:  count,
	}
}

// Load creates a guest module loading error
func Load(name string, cause error) *Error {
	return &Error{
		Phase:    PhaseCompile,
		Kind:     KindLoad,
		Resource: name,
		Detail:   "compile module",
		Cause:    cause,
	}
}

// Instantiation creates a guest instantiation error
func Instantiation(name string, cause error) *Error {
	return &Error{
		Phase:    PhaseGuest,
		Kind:     KindInstantiation,
		Resource: name,
		Detail:   "instantiate module",
		Cause:    cause,
	}
}
