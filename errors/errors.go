package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // binary to module
	PhasePatch  Phase = "patch"  // stream mutation
	PhaseLocate Phase = "locate" // debug-info lookup
	PhaseEncode Phase = "encode" // module to binary
	PhaseIO     Phase = "io"     // file read/write
)

// Kind categorizes the error
type Kind string

const (
	KindMisaligned          Kind = "misaligned"
	KindInvalidMagic        Kind = "invalid_magic"
	KindInvalidData         Kind = "invalid_data"
	KindOperandTooWide      Kind = "operand_too_wide"
	KindInstructionTooLong  Kind = "instruction_too_long"
	KindInvalidOffset       Kind = "invalid_offset"
	KindUnexpectedAddrModel Kind = "unexpected_addressing_model"
	KindOutOfRange          Kind = "out_of_range"
	KindNotFound            Kind = "not_found"
	KindNoFunction          Kind = "no_function"
)

// Error is the structured error type used throughout the tool
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int // word offset into the stream, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset > 0 {
		fmt.Fprintf(&b, " at word %d", e.Offset)
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

// Offset sets the word offset at which the error occurred
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// Misaligned reports a binary whose size is not a whole number of words
func Misaligned(size int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMisaligned,
		Detail: fmt.Sprintf("file size %d is not a multiple of 4", size),
		Value:  size,
	}
}

// InvalidMagic reports an unrecognized container magic number
func InvalidMagic(got uint32) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidMagic,
		Detail: fmt.Sprintf("magic 0x%08X is not SPIR-V", got),
		Value:  got,
	}
}

// InvalidData reports a malformed instruction stream
func InvalidData(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: detail,
	}
}

// OperandTooWide reports an operand value that does not fit one word
func OperandTooWide(value uint64) *Error {
	return &Error{
		Phase:  PhasePatch,
		Kind:   KindOperandTooWide,
		Detail: fmt.Sprintf("operand %d exceeds 32 bits", value),
		Value:  value,
	}
}

// InstructionTooLong reports an instruction whose word count overflows
// the 16-bit length field of the header word
func InstructionTooLong(words int) *Error {
	return &Error{
		Phase:  PhasePatch,
		Kind:   KindInstructionTooLong,
		Detail: fmt.Sprintf("instruction spans %d words, limit is 65535", words),
		Value:  words,
	}
}

// InvalidOffset reports an insertion offset beyond the stream end
func InvalidOffset(offset, streamLen int) *Error {
	return &Error{
		Phase:  PhasePatch,
		Kind:   KindInvalidOffset,
		Offset: offset,
		Detail: fmt.Sprintf("offset %d beyond stream of %d words", offset, streamLen),
	}
}

// UnexpectedAddressingModel reports an addressing model that is neither
// the expected baseline nor the patch target
func UnexpectedAddressingModel(offset int, got uint32) *Error {
	return &Error{
		Phase:  PhasePatch,
		Kind:   KindUnexpectedAddrModel,
		Offset: offset,
		Detail: fmt.Sprintf("addressing model %d is neither Logical nor PhysicalStorageBuffer64", got),
		Value:  got,
	}
}

// FileIndexOutOfRange reports a file index with no line-marker table
func FileIndexOutOfRange(fileIdx, numFiles int) *Error {
	return &Error{
		Phase:  PhaseLocate,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("file index %d out of range (module has %d source files)", fileIdx, numFiles),
		Value:  fileIdx,
	}
}

// LineNotFound reports a target line past the last annotated line
func LineNotFound(fileIdx int, line uint32) *Error {
	return &Error{
		Phase:  PhaseLocate,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("no line marker at or after line %d in file %d", line, fileIdx),
		Value:  line,
	}
}

// NoEnclosingFunction reports a line marker outside any function body
func NoEnclosingFunction(line uint32) *Error {
	return &Error{
		Phase:  PhaseLocate,
		Kind:   KindNoFunction,
		Detail: fmt.Sprintf("line marker at line %d has no enclosing function", line),
		Value:  line,
	}
}

// ReadFailed wraps a file read error
func ReadFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("read %s", path),
		Cause:  cause,
	}
}

// WriteFailed wraps a file write error
func WriteFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("write %s", path),
		Cause:  cause,
	}
}
