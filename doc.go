// Package csnappy provides memory-safe, type-safe Go bindings for the snappy
// C library, built around a reusable foreign-boundary toolkit.
//
// The compression codec is deliberately treated as an opaque collaborator;
// the engineering substance of this library is the boundary layer that turns
// unchecked, ownership-agnostic C calls into safe, composable Go operations.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	csnappy/             Root package with the codec API (Compress, Uncompress, Validate)
//	├── buffer/          Owned output buffers with a length <= capacity invariant
//	├── callback/        Register/trigger/unregister protocol for C function pointers
//	├── fault/           Panic containment at the cgo export boundary
//	├── errors/          Structured error types for boundary operations
//	├── internal/snappyc Raw snappy C ABI declarations
//	└── cmd/snapz        CLI and interactive TUI for the codec
//
// # Quick Start
//
//	compressed := csnappy.Compress(data)
//
//	original, err := csnappy.Uncompress(compressed.Bytes())
//	if err != nil {
//	    // errors.Is(err, csnappy.ErrCorrupt) — input was not valid snappy data
//	}
//
//	ok := csnappy.Validate(compressed.Bytes())
//
// # Error Model
//
// Raw C status codes never escape to callers. Malformed input always yields
// ErrCorrupt, never a crash; the two foreign failure paths (length query
// rejection and decompression rejection) are deliberately collapsed because
// the C contract does not distinguish them either.
//
// # Callbacks
//
// The callback package supports three invocation shapes with distinct safety
// contracts: global synchronous, targeted synchronous (a registered Go value
// is threaded back through the invocation), and asynchronous, where a
// C-owned thread fires callbacks concurrently with local goroutines. In the
// asynchronous regime Unregister blocks until the foreign side confirms no
// further invocation can occur, so a target may be released safely the
// moment Unregister returns.
//
// # Thread Safety
//
// Codec operations are pure calls and safe for concurrent use. A Buffer has
// a single owner and must not be shared across goroutines. Dispatcher and
// Hook in the callback package are safe for concurrent use; the data a
// callback touches is the caller's to synchronize in the asynchronous
// regime.
package csnappy
