// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

// huffmanDecompress reverses huffmanCompress chunk by chunk: read the total
// output length, then for each chunk read its stored length, its
// incompressible flag, and either a raw byte run or a canonical code table
// followed by a table-driven bit decode.
func huffmanDecompress(tokens []byte) ([]byte, error) {
	bb := newBitBuffer(tokens)
	outputLen := bb.PopBits(64)

	if outputLen == 0 {
		return []byte{}, nil
	}

	out := make([]byte, 0, outputLen)
	var startLen uint64
	for startLen < outputLen {
		bb.AlignByteRead()
		if bb.ReadByteIndex()+4 > len(tokens) {
			return nil, ErrTruncated
		}
		chunkLen := uint32(bb.PopBits(32))

		incompressible := bb.PopBit()
		if incompressible != 0 {
			bb.AlignByteRead()
			idx := bb.ReadByteIndex()
			if idx+int(chunkLen) > len(tokens) {
				return nil, ErrTruncated
			}
			out = append(out, tokens[idx:idx+int(chunkLen)]...)
			bb.SetReadByteIndex(idx + int(chunkLen))
		} else {
			decoded, err := decodeHuffChunk(&bb, chunkLen)
			if err != nil {
				return nil, err
			}
			out = append(out, decoded...)
		}

		startLen += uint64(chunkLen)
	}

	if uint64(len(out)) != outputLen {
		return nil, ErrTruncated
	}
	return out, nil
}

// decodeHuffChunk reads one chunk's canonical code table (a maxcode array
// indexed by code depth, per §4.5) and uses it to decode exactly chunkLen
// symbols from the bit stream.
func decodeHuffChunk(bb *bitBuffer, chunkLen uint32) ([]byte, error) {
	symbolCount := int(bb.PopBits(8)) + 1

	var maxCodes [huffMaxCodeLen + 1]uint16
	var symbols [1 << huffMaxCodeLen]byte

	codeValue := uint16(0)
	codeDepth := 1
	prevSymbol := byte(0)
	for i := 0; i < symbolCount; i++ {
		bit := bb.PopBit()
		for bit != 0 {
			codeValue <<= 1
			codeDepth++
			if codeDepth > huffMaxCodeLen {
				return nil, ErrBadHuffmanTable
			}
			bit = bb.PopBit()
		}

		diff := uint8(1)
		if bb.PopBit() != 0 {
			diff = 2
			if bb.PopBit() != 0 {
				diff = 3
				if bb.PopBit() != 0 {
					diff = 4
					if bb.PopBit() != 0 {
						diff = 5
					}
				}
			}
		}
		if diff == 5 {
			diff = uint8(bb.PopBits(8))
		}

		symbol := prevSymbol + diff
		prevSymbol = symbol

		symbols[codeValue] = symbol
		maxCodes[codeDepth] = codeValue + 1
		codeValue++
	}
	maxCodes[codeDepth] = 0xFFFF

	bb.AlignByteRead()

	out := make([]byte, 0, chunkLen)
	codeWord := uint16(0)
	depth := 1
	for len(out) < int(chunkLen) {
		bit := bb.PopBit()
		codeWord |= uint16(bit)
		if codeWord < maxCodes[depth] {
			out = append(out, symbols[codeWord])
			codeWord = 0
			depth = 1
		} else {
			codeWord <<= 1
			depth++
			if depth > huffMaxCodeLen {
				return nil, ErrBadHuffmanTable
			}
		}
	}

	// PopBit returns zeros once the data runs out and leaves the read cursor
	// at the end of the data; a cursor there means the table or payload was
	// cut short.
	if bb.ReadByteIndex() >= len(bb.Bytes()) {
		return nil, ErrTruncated
	}

	return out, nil
}
