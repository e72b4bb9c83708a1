// Package errors provides structured error types for the csnappy boundary layer.
//
// Errors are categorized by Phase (which boundary operation was running) and
// Kind (error category). Raw foreign status codes never appear in an Error;
// they are translated at the wrapper boundary before construction.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindBoundaryFault).
//		Op("trigger").
//		Detail("callback panicked: %v", v).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseUncompress, "not a snappy frame")
//	err := errors.Closed(errors.PhaseRegister, "dispatcher")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so sentinel errors compare by category rather
// than identity.
package errors
