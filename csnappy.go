package csnappy

import (
	"github.com/wippyai/csnappy/buffer"
	"github.com/wippyai/csnappy/errors"
	"github.com/wippyai/csnappy/internal/snappyc"
)

// ErrCorrupt is returned by Uncompress when the input is not valid snappy
// data. Matching is by category: errors.Is(err, ErrCorrupt) holds for every
// malformed-input failure regardless of which foreign call rejected it.
var ErrCorrupt = errors.InvalidInput(errors.PhaseUncompress, "input is not valid snappy data")

// MaxCompressedLen returns the largest possible compressed size for n input
// bytes. Useful for capacity planning; Compress performs this query itself.
func MaxCompressedLen(n int) int {
	return snappyc.MaxCompressedLength(n)
}

// Compress returns the compressed form of input in a freshly allocated
// buffer. The buffer's capacity is the foreign upper bound for len(input);
// its length is the count of bytes actually written.
//
// The C contract defines no failure mode for a destination of at least
// MaxCompressedLen(len(input)) bytes, so Compress does not return an error.
// A non-OK status here means the sizing invariant was violated and panics.
func Compress(input []byte) *buffer.Buffer {
	buf := buffer.New(snappyc.MaxCompressedLength(len(input)))

	n, st := snappyc.Compress(input, buf.Storage())
	if st != snappyc.StatusOK {
		panic(errors.New(errors.PhaseCompress, errors.KindInvalidInput).
			Op("snappy_compress").
			Detail("status %d with correctly sized destination", st).
			Build())
	}
	if err := buf.SetLen(n); err != nil {
		panic(errors.New(errors.PhaseCompress, errors.KindInvalidInput).
			Op("snappy_compress").
			Cause(err).
			Detail("written length exceeds queried bound").
			Build())
	}
	return buf
}

// Uncompress returns the decompressed form of input. It first queries the
// exact decompressed length; if that query rejects the framing no further
// foreign call is made. Malformed input yields (nil, ErrCorrupt), never a
// crash, and the buffer is sized exactly so no trailing capacity is wasted.
func Uncompress(input []byte) (*buffer.Buffer, error) {
	n, st := snappyc.UncompressedLength(input)
	if st != snappyc.StatusOK {
		return nil, ErrCorrupt
	}

	buf := buffer.New(n)
	written, st := snappyc.Uncompress(input, buf.Storage())
	if st != snappyc.StatusOK {
		return nil, ErrCorrupt
	}
	if err := buf.SetLen(written); err != nil {
		return nil, errors.Wrap(errors.PhaseUncompress, errors.KindInvalidInput, err,
			"foreign-reported length exceeds queried size")
	}
	return buf, nil
}

// Validate reports whether input is well-formed compressed data. It
// allocates nothing and performs a single foreign query.
func Validate(input []byte) bool {
	return snappyc.ValidateCompressedBuffer(input) == snappyc.StatusOK
}
