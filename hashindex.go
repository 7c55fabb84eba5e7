// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

const (
	// hashBits / prevBits size the chained hash index: hashSize buckets of
	// "newest position", and a prev-link array addressed by position
	// masked to prevSize, giving each inserted position a single forward
	// link to whatever was at that slot before it.
	hashBits = 20
	prevBits = 20

	hashSize = 1 << hashBits
	prevSize = 1 << prevBits
	prevMask = prevSize - 1

	// hashConst is the multiplier applied to a little-endian 4-byte load;
	// only the high hashBits bits of the 32-bit product are kept.
	hashConst uint32 = 0xA68BB0D5

	// hashLookbackLength is the number of bytes hashed per insertion point
	// (the match finder never looks at fewer than this many bytes at once).
	hashLookbackLength = 4
)

// hashIndex is the chained hash table described in the data model: head
// holds the newest position per bucket, prev links each inserted position
// to the previous one stored at the same bucket. It is allocated fresh per
// chunk task so chunk tasks share no mutable state (§5).
//
// Position 0 doubles as the "empty" sentinel in both arrays (as in the
// source), so a match candidate at absolute position 0 can never be found
// through the index; the match finder's "reject if c == 0" rule exists
// because of this, not despite it.
//
// Positions are stored as full 64-bit values rather than the source's
// 32-bit-with-high-bits-merged-in scheme (needed there to address >4GiB
// inputs from a 32-bit table); Go chunks can be arbitrarily large in
// memory, so storing the whole position up front sidesteps that hack
// entirely instead of reproducing it.
type hashIndex struct {
	head []uint64
	prev []uint64
}

func newHashIndex() *hashIndex {
	return &hashIndex{head: make([]uint64, hashSize), prev: make([]uint64, prevSize)}
}

// hashAt loads the 4 bytes at data[pos:] as a little-endian uint32 and
// returns the top hashBits bits of data*hashConst.
func hashAt(data []byte, pos int) uint32 {
	raw := uint32(data[pos]) | uint32(data[pos+1])<<8 | uint32(data[pos+2])<<16 | uint32(data[pos+3])<<24
	return (raw * hashConst) >> (32 - hashBits)
}

// insert records that a 4-byte run starting at pos hashes into the index,
// chaining any previous occupant of that bucket behind it.
func (h *hashIndex) insert(data []byte, pos int) {
	key := hashAt(data, pos)
	h.prev[uint64(pos)&prevMask] = h.head[key]
	h.head[key] = uint64(pos)
}

// chainHead returns the newest inserted position for the bucket that pos
// hashes into. 0 means empty.
func (h *hashIndex) chainHead(data []byte, pos int) uint64 {
	key := hashAt(data, pos)
	return h.head[key]
}

// chainNext follows the prev-link from a candidate position, returning the
// next older candidate at the same bucket. 0 means no further candidate.
func (h *hashIndex) chainNext(pos uint64) uint64 {
	return h.prev[pos&prevMask]
}
