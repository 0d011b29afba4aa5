package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // collection/buffer/view construction
	PhaseAccess    Phase = "access"    // reads through a collection or view
	PhaseMutate    Phase = "mutate"    // writes through a collection or view
	PhaseDetach    Phase = "detach"    // buffer detach protocol
	PhaseEncode    Phase = "encode"    // snapshot encoding
	PhaseDecode    Phase = "decode"    // snapshot decoding
)

// Kind categorizes the error
type Kind string

const (
	KindIndexOutOfBounds Kind = "index_out_of_bounds"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindReadonly         Kind = "readonly"
	KindDetached         Kind = "detached"
	KindInvalidOffset    Kind = "invalid_offset"
	KindAllocation       Kind = "allocation"
	KindInvalidData      Kind = "invalid_data"
)

// Error is the structured error type used throughout the runtime layer
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
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

// Is reports whether target matches this error. Two errors match when
// their phase and kind agree; an empty phase on the target acts as a
// wildcard so sentinel kinds can be matched regardless of phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
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

// IndexOutOfBounds creates an index error for collection access.
func IndexOutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIndexOutOfBounds,
		Detail: fmt.Sprintf("index %d out of range for length %d", index, length),
	}
}

// Readonly creates a read-only violation error for the named operation.
func Readonly(op string) *Error {
	return &Error{
		Phase:  PhaseMutate,
		Kind:   KindReadonly,
		Detail: fmt.Sprintf("%s on read-only collection", op),
	}
}

// Detached creates a detached-buffer error.
func Detached(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDetached,
		Detail: "buffer has been detached",
	}
}

// InvalidOffset creates a misaligned-offset error for view construction.
func InvalidOffset(byteOffset, elemSize int) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindInvalidOffset,
		Detail: fmt.Sprintf("byte offset %d is not a multiple of element size %d", byteOffset, elemSize),
	}
}

// OutOfBounds creates a range error for view construction.
func OutOfBounds(byteOffset, byteLength, bufferLength int) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, %d) exceeds buffer length %d", byteOffset, byteOffset+byteLength, bufferLength),
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(size int) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
	}
}

// Sentinels for errors.Is matching independent of phase.

var (
	ErrIndexOutOfBounds = &Error{Kind: KindIndexOutOfBounds}
	ErrReadonly         = &Error{Kind: KindReadonly}
	ErrDetached         = &Error{Kind: KindDetached}
	ErrInvalidOffset    = &Error{Kind: KindInvalidOffset}
	ErrOutOfBounds      = &Error{Kind: KindOutOfBounds}
	ErrAllocation       = &Error{Kind: KindAllocation}
)
