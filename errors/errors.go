package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which boundary operation the error occurred in
type Phase string

const (
	PhaseCompress   Phase = "compress"   // compress wrapper
	PhaseUncompress Phase = "uncompress" // uncompress wrapper
	PhaseValidate   Phase = "validate"   // validation query
	PhaseRegister   Phase = "register"   // callback registration
	PhaseDispatch   Phase = "dispatch"   // callback invocation
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput  Kind = "invalid_input"  // foreign side rejected the data
	KindBoundaryFault Kind = "boundary_fault" // local panic intercepted at the boundary
	KindClosed        Kind = "closed"         // resource already released
	KindRegistration  Kind = "registration"   // registration bookkeeping failure
	KindInvalidHandle Kind = "invalid_handle" // stale or zero registry handle
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
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

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
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

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed creates an already-released error
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Registration creates a registration bookkeeping error
func Registration(op string, cause error) *Error {
	return &Error{
		Phase: PhaseRegister,
		Kind:  KindRegistration,
		Op:    op,
		Cause: cause,
	}
}

// InvalidHandle creates a stale-handle error
func InvalidHandle(phase Phase, handle uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		Detail: fmt.Sprintf("handle %d is not registered", handle),
	}
}

// BoundaryFault creates an error describing a panic intercepted at the
// foreign boundary. The panic value is recorded in the detail, never
// re-raised.
func BoundaryFault(op string, value any) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindBoundaryFault,
		Op:     op,
		Detail: fmt.Sprintf("callback panicked: %v", value),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
