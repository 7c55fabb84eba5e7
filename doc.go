// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

/*
Package loh implements LOH ("Lookback + Huffman"), a general-purpose
lossless byte-stream codec: an optional byte-stride delta pre-filter, an
LZ77-style lookback match finder, and a canonical length-limited Huffman
coder, wrapped in a chunked container that can run its stages across
multiple chunks in parallel.

# Compress

	out, err := loh.Compress(data, loh.DefaultConfig(), runtime.NumCPU())

# Decompress

	out, err := loh.Decompress(out, true) // verify the stored checksum

The container format, its stage order (delta, then lookback, then
Huffman), and the per-chunk fallback to raw/uncompressed storage when a
stage doesn't shrink its input are all part of the wire format; decoding
a container produced by this package with any Config always recovers the
original bytes.
*/
package loh
