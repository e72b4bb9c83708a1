// Package buffer provides owned, bounds-checked byte buffers for foreign
// calls with length-prefixed or query-then-allocate output protocols.
//
// A Buffer separates capacity (the allocated size, decided before the
// foreign call) from length (the count of bytes the foreign side actually
// wrote, committed after the call returns):
//
//	buf := buffer.New(bound)
//	n := foreignFill(buf.Storage())
//	if err := buf.SetLen(n); err != nil { ... }
//	return buf.Bytes()
//
// A Buffer has a single owner: the wrapper that created it, then the caller
// it is returned to. It is never shared across goroutines and holds no
// foreign memory; storage is ordinary Go-managed memory that may be passed
// to a foreign call for the duration of that call only.
package buffer
