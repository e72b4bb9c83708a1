package snappyc

/*
#cgo LDFLAGS: -lsnappy
#include <stddef.h>
#include <snappy-c.h>
*/
import "C"

import "unsafe"

// Status is the raw snappy_status enum.
type Status int32

const (
	StatusOK             Status = C.SNAPPY_OK
	StatusInvalidInput   Status = C.SNAPPY_INVALID_INPUT
	StatusBufferTooSmall Status = C.SNAPPY_BUFFER_TOO_SMALL
)

// placeholder stands in for the base pointer of empty slices so the foreign
// side always receives a valid pointer paired with length 0.
var placeholder byte

func base(b []byte) *C.char {
	if len(b) == 0 {
		return (*C.char)(unsafe.Pointer(&placeholder))
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}

// MaxCompressedLength returns the foreign upper bound for compressing
// srcLen input bytes. Pure query, no side effects.
func MaxCompressedLength(srcLen int) int {
	return int(C.snappy_max_compressed_length(C.size_t(srcLen)))
}

// Compress writes the compressed form of src into dst, which must be at
// least MaxCompressedLength(len(src)) bytes. It returns the written length
// and the raw status.
func Compress(src, dst []byte) (int, Status) {
	dstLen := C.size_t(len(dst))
	st := C.snappy_compress(base(src), C.size_t(len(src)), base(dst), &dstLen)
	return int(dstLen), Status(st)
}

// Uncompress writes the decompressed form of src into dst. On a non-OK
// status the contents of dst are undefined.
func Uncompress(src, dst []byte) (int, Status) {
	dstLen := C.size_t(len(dst))
	st := C.snappy_uncompress(base(src), C.size_t(len(src)), base(dst), &dstLen)
	return int(dstLen), Status(st)
}

// UncompressedLength queries the exact decompressed length of src. A non-OK
// status means src is not validly framed.
func UncompressedLength(src []byte) (int, Status) {
	var n C.size_t
	st := C.snappy_uncompressed_length(base(src), C.size_t(len(src)), &n)
	return int(n), Status(st)
}

// ValidateCompressedBuffer reports whether src is well-formed compressed
// data. Zero-allocation query.
func ValidateCompressedBuffer(src []byte) Status {
	return Status(C.snappy_validate_compressed_buffer(base(src), C.size_t(len(src))))
}
