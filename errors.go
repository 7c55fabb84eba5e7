// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

import "errors"

// Sentinel errors returned by Compress/Decompress and their internal stages.
var (
	// ErrBadMagic is returned when a container's 4-byte prefix isn't "LOHz".
	ErrBadMagic = errors.New("loh: bad magic")
	// ErrTruncated is returned when a read would run past the end of the input.
	ErrTruncated = errors.New("loh: truncated input")
	// ErrBadDistance is returned when a lookback match's distance exceeds the
	// current decoded output length.
	ErrBadDistance = errors.New("loh: lookback distance exceeds output")
	// ErrBadHuffmanTable is returned when a reconstructed Huffman code length
	// would exceed 15 bits.
	ErrBadHuffmanTable = errors.New("loh: huffman code length exceeds 15 bits")
	// ErrChecksumMismatch is returned when verification is requested and the
	// computed checksum does not match the stored, nonzero checksum.
	ErrChecksumMismatch = errors.New("loh: checksum mismatch")
	// ErrAlloc names a buffer allocation failure. No function in this
	// package returns it: Compress always returns a nil error, and a
	// caller-supplied Allocator's result is used as-is.
	ErrAlloc = errors.New("loh: allocation failed")
)

// internalError panics with a diagnostic, for conditions the format's
// invariants guarantee cannot happen given valid inputs to an internal stage.
// Reaching one means the implementation has a bug, not that the input is
// malformed. No stage calls it: the hash index and the Huffman merge queue
// carry no explicit invariant checks, and out-of-range accesses there fall
// to Go's own bounds-check panics.
func internalError(msg string) {
	panic("loh: internal error: " + msg)
}
