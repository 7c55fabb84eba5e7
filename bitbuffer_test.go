// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

import "testing"

func TestBitBufferRoundTrip(t *testing.T) {
	var bb bitBuffer
	bb.PushBit(1)
	bb.PushBits(0x3, 2)
	bb.PushBits(0x1FF, 9)
	bb.AlignByte()
	bb.PushBits(0xDEADBEEF, 32)

	bb2 := newBitBuffer(bb.Bytes())
	if got := bb2.PopBit(); got != 1 {
		t.Fatalf("PopBit 1 = %d, want 1", got)
	}
	if got := bb2.PopBits(2); got != 0x3 {
		t.Fatalf("PopBits 2 = %#x, want 0x3", got)
	}
	if got := bb2.PopBits(9); got != 0x1FF {
		t.Fatalf("PopBits 9 = %#x, want 0x1FF", got)
	}
	bb2.AlignByteRead()
	if got := bb2.PopBits(32); got != 0xDEADBEEF {
		t.Fatalf("PopBits 32 = %#x, want 0xDEADBEEF", got)
	}
}

func TestBitBufferPopPastEndReturnsZero(t *testing.T) {
	bb := newBitBuffer(nil)
	if got := bb.PopBits(64); got != 0 {
		t.Fatalf("PopBits on empty buffer = %#x, want 0", got)
	}
}

func TestBitBufferByteAlignment(t *testing.T) {
	var bb bitBuffer
	bb.PushBit(1)
	bb.AlignByte()
	bb.PushBits(0x42, 8)
	if got := bb.Bytes(); len(got) != 2 || got[1] != 0x42 {
		t.Fatalf("Bytes() = %v, want [_, 0x42]", got)
	}
}

func TestByteBufferReserveAndPush(t *testing.T) {
	var buf byteBuffer
	buf.PushByte(1)
	buf.Push([]byte{2, 3, 4})
	if got := buf.Bytes(); len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Fatalf("Bytes() = %v, want [1 2 3 4]", got)
	}
	if buf.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", buf.Len())
	}
}
