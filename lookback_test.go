// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

import (
	"bytes"
	"math/rand"
	"testing"
)

func lookbackRoundTrip(t *testing.T, input []byte, level int) {
	t.Helper()
	tokens := lookbackCompress(input, level)
	out, err := lookbackDecompress(tokens)
	if err != nil {
		t.Fatalf("lookbackDecompress: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(out), len(input))
	}
}

func TestLookbackRoundTripEmpty(t *testing.T) {
	lookbackRoundTrip(t, nil, 4)
}

func TestLookbackRoundTripRepeat(t *testing.T) {
	input := bytes.Repeat([]byte{'A'}, 256)
	lookbackRoundTrip(t, input, 4)
}

func TestLookbackRoundTripRandom(t *testing.T) {
	input := make([]byte, 4096)
	rand.New(rand.NewSource(42)).Read(input)
	lookbackRoundTrip(t, input, 4)
}

func TestLookbackRoundTripAcrossLevels(t *testing.T) {
	input := bytes.Repeat([]byte("abcabcabcabcxyz"), 200)
	for _, level := range []int{-12, -1, 0, 1, 4, 12} {
		lookbackRoundTrip(t, input, level)
	}
}

func TestLookbackCompressesRepeats(t *testing.T) {
	input := bytes.Repeat([]byte{'A'}, 4096)
	tokens := lookbackCompress(input, 4)
	if len(tokens) >= len(input) {
		t.Fatalf("lookbackCompress did not shrink a long run: %d >= %d", len(tokens), len(input))
	}
}

func TestLookbackDecompressRejectsBadDistance(t *testing.T) {
	input := []byte("abcdefghabcdefgh")
	tokens := lookbackCompress(input, 4)

	// Corrupt the max_distance field (bytes 8..12) down to 0 so any real
	// back-reference in the stream becomes an out-of-range distance.
	corrupt := append([]byte(nil), tokens...)
	for i := 8; i < 12; i++ {
		corrupt[i] = 0
	}

	_, err := lookbackDecompress(corrupt)
	if err == nil {
		t.Fatalf("expected an error decoding a corrupted max_distance field")
	}
}

func TestLookbackDecompressRejectsTruncation(t *testing.T) {
	input := bytes.Repeat([]byte("hello world "), 50)
	tokens := lookbackCompress(input, 4)

	_, err := lookbackDecompress(tokens[:len(tokens)-1])
	if err == nil {
		t.Fatalf("expected an error decoding a truncated token stream")
	}
}

func TestCalcLookbackOverheadMonotonic(t *testing.T) {
	base := calcLookbackOverhead(10, 10, 0, false)
	longer := calcLookbackOverhead(10, 10000, 0, false)
	if longer < base {
		t.Fatalf("overhead for a longer match should never cost less: %d < %d", longer, base)
	}
	farther := calcLookbackOverhead(10_000_000, 10, 0, false)
	if farther < base {
		t.Fatalf("overhead for a farther match should never cost less: %d < %d", farther, base)
	}
}
