// Package errors provides structured error types for the spvpatch tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending value, the word offset in
// the stream where relevant, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhasePatch, errors.KindInvalidOffset).
//		Offset(off).
//		Detail("insertion offset beyond stream end").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidOffset(off, streamLen)
//	err := errors.LineNotFound(fileIdx, line)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when Phase and Kind agree, so
// callers can classify failures without string matching.
package errors
