// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

// byteBuffer is an owned, growable, byte-indexed sequence with capacity
// doubling on append and a capacity floor of 8. It mirrors the source's
// loh_byte_buffer (data/len/cap), kept as an explicit type rather than a
// bare []byte so Reserve can be called ahead of a known amount of writing,
// matching the stage pipeline's "allocate once, fill in place" discipline.
type byteBuffer struct {
	data []byte
}

// newByteBuffer returns a buffer whose contents are raw's bytes (raw is
// reused directly without copying, mirroring the source's in-place
// loh_byte_buffer construction over an existing allocation).
func newByteBuffer(raw []byte) byteBuffer {
	return byteBuffer{data: raw}
}

// Len returns the number of valid bytes.
func (b *byteBuffer) Len() int { return len(b.data) }

// Bytes returns the valid bytes. The slice aliases the buffer; callers must
// not retain it across further mutation.
func (b *byteBuffer) Bytes() []byte { return b.data }

// Reserve ensures capacity for at least extra more bytes, doubling from a
// floor of 8 as needed.
func (b *byteBuffer) Reserve(extra int) {
	need := len(b.data) + extra
	if cap(b.data) >= need {
		return
	}
	newCap := cap(b.data)
	if newCap < 8 {
		newCap = 8
	}
	for newCap < need {
		newCap <<= 1
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// PushByte appends a single byte.
func (b *byteBuffer) PushByte(v byte) {
	b.Reserve(1)
	b.data = append(b.data, v)
}

// Push appends bytes by copy.
func (b *byteBuffer) Push(bytes []byte) {
	if len(bytes) == 0 {
		return
	}
	b.Reserve(len(bytes))
	b.data = append(b.data, bytes...)
}
