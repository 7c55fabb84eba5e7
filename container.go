// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

import (
	"bytes"
	"encoding/binary"
	"runtime"
)

// magic is the 4-byte container prefix, per §3.
var magic = []byte("LOHz")

// chunkTableEntryLen is the size in bytes of one (compressed_offset,
// decompressed_offset) pair in the container's chunk table.
const chunkTableEntryLen = 16

func ceilDivU64(a, b uint64) uint64 {
	return (a + b - 1) / b
}

// Compress encodes data as an LOH container using cfg, splitting the input
// into up to threads chunks (each but the last at least 32KiB) that are encoded
// concurrently. The container always decodes back to exactly data
// regardless of cfg, since every stage falls back to storing its input
// verbatim whenever it fails to shrink it.
func Compress(data []byte, cfg Config, threads int) ([]byte, error) {
	if threads < 1 {
		threads = 1
	}

	sum := checksum(data)

	chunkSize := int(ceilDivU64(uint64(len(data)), uint64(threads)))
	if chunkSize < huffChunkSize {
		chunkSize = huffChunkSize
	}
	chunkCount := 0
	if len(data) > 0 {
		chunkCount = int(ceilDivU64(uint64(len(data)), uint64(chunkSize)))
	}

	results := encodeChunksParallel(data, cfg, chunkSize, chunkCount, threads)

	headerLen := 4 + 4 + 8 + chunkTableEntryLen*(chunkCount+1)
	buf := newByteBuffer(cfg.alloc(0))
	buf.Reserve(headerLen + len(data)/2)

	buf.Push(magic)
	var tmp4 [4]byte
	binary.LittleEndian.PutUint32(tmp4[:], sum)
	buf.Push(tmp4[:])
	var tmp8 [8]byte
	binary.LittleEndian.PutUint64(tmp8[:], uint64(chunkCount))
	buf.Push(tmp8[:])

	tableLoc := buf.Len()
	buf.Push(make([]byte, chunkTableEntryLen*(chunkCount+1)))

	compOffsets := make([]uint64, chunkCount+1)
	decompOffsets := make([]uint64, chunkCount+1)

	compOffset := uint64(buf.Len())
	var decompOffset uint64
	for i := 0; i < chunkCount; i++ {
		compOffsets[i] = compOffset
		decompOffsets[i] = decompOffset

		start := i * chunkSize
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		decompOffset += uint64(end - start)

		r := results[i]
		buf.PushByte(r.diffFlag)
		buf.PushByte(r.lookbackFlag)
		buf.PushByte(r.huffFlag)
		buf.PushByte(0)
		buf.Push(r.payload)

		compOffset += 4 + uint64(len(r.payload))
	}
	compOffsets[chunkCount] = compOffset
	decompOffsets[chunkCount] = decompOffset

	raw := buf.Bytes()
	for i := 0; i <= chunkCount; i++ {
		off := tableLoc + i*chunkTableEntryLen
		binary.LittleEndian.PutUint64(raw[off:off+8], compOffsets[i])
		binary.LittleEndian.PutUint64(raw[off+8:off+16], decompOffsets[i])
	}

	return raw, nil
}

// Decompress reverses Compress. When verify is true and the container's
// stored checksum is nonzero, the decoded output's checksum is checked
// before returning; a zero stored checksum means "unchecked", so there is
// nothing to verify against (§4.2). Compress always stores the computed
// checksum.
func Decompress(data []byte, verify bool) ([]byte, error) {
	if len(data) < 16 || !bytes.Equal(data[0:4], magic) {
		return nil, ErrBadMagic
	}
	storedChecksum := binary.LittleEndian.Uint32(data[4:8])
	chunkCount := binary.LittleEndian.Uint64(data[8:16])

	tableLoc := 16
	tableLen := chunkTableEntryLen * (chunkCount + 1)
	if uint64(len(data)-tableLoc) < tableLen {
		return nil, ErrTruncated
	}

	compOffsets := make([]uint64, chunkCount+1)
	decompOffsets := make([]uint64, chunkCount+1)
	for i := uint64(0); i <= chunkCount; i++ {
		off := tableLoc + int(i)*chunkTableEntryLen
		compOffsets[i] = binary.LittleEndian.Uint64(data[off : off+8])
		decompOffsets[i] = binary.LittleEndian.Uint64(data[off+8 : off+16])
	}

	outputLen := decompOffsets[chunkCount]
	out := make([]byte, outputLen)

	tasks := make([]chunkDecodeTask, 0, chunkCount)
	for i := uint64(0); i < chunkCount; i++ {
		chunkStart := compOffsets[i]
		chunkEnd := compOffsets[i+1]
		if chunkEnd > uint64(len(data)) || chunkStart+4 > chunkEnd {
			return nil, ErrTruncated
		}
		flags := data[chunkStart : chunkStart+4]
		tasks = append(tasks, chunkDecodeTask{
			payload:      data[chunkStart+4 : chunkEnd],
			diffFlag:     flags[0],
			lookbackFlag: flags[1],
			huffFlag:     flags[2],
			outStart:     int(decompOffsets[i]),
			outEnd:       int(decompOffsets[i+1]),
		})
	}

	if err := decodeChunksParallel(out, tasks, runtime.GOMAXPROCS(0)); err != nil {
		return nil, err
	}

	if verify && storedChecksum != 0 {
		if checksum(out) != storedChecksum {
			return nil, ErrChecksumMismatch
		}
	}

	return out, nil
}
