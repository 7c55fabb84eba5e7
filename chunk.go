// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

// chunkResult is one chunk's encoded form plus the per-stage flags the
// container stores alongside it so the decoder knows which stages ran.
type chunkResult struct {
	diffFlag     byte // delta stride used, 0 = delta not applied
	lookbackFlag byte // nonzero = lookback_decompress must run (the exact value is diagnostic only)
	huffFlag     byte // nonzero = huffman_decompress must run
	payload      []byte
}

// encodeChunk runs one chunk through the pipeline described in §5: delta
// (explicit or autodetected stride, always kept when nonzero), lookback,
// then Huffman, with lookback and Huffman each gated on whether they
// actually shrank their input. When lookback's own reduction was marginal
// (output above 80% of its input, or above 30% with delta active) and
// Huffman succeeded on the lookback output, it also tries Huffman-coding the
// pre-lookback bytes directly and keeps whichever is smaller — lookback
// overhead sometimes costs more than the entropy coder can recover from
// tokenizing what was already fairly random-looking data.
func encodeChunk(raw []byte, cfg Config) chunkResult {
	stride := cfg.Stride
	if stride < 0 {
		stride = 0
	}
	if stride > maxStride {
		stride = maxStride
	}
	if stride == 0 && cfg.DetectStride {
		stride = detectStride(raw)
	}

	buf := raw
	if stride != 0 {
		buf = append([]byte(nil), raw...)
		deltaEncode(buf, stride)
	}
	origAfterDelta := buf

	level := clampLookbackLevel(cfg.LookbackLevel)
	didLookback := level != 0
	lbCompRatio100 := 100
	if didLookback {
		newBuf := lookbackCompress(buf, level)
		if len(newBuf) < len(buf) {
			lbCompRatio100 = len(newBuf) * 100 / len(buf)
			buf = newBuf
		} else {
			didLookback = false
		}
	}

	didHuff := false
	if cfg.Huffman {
		newBuf := huffmanCompress(buf)
		if len(newBuf) < len(buf) {
			buf = newBuf
			didHuff = true

			if didLookback && (lbCompRatio100 > 80 || (stride != 0 && lbCompRatio100 > 30)) {
				newBuf2 := huffmanCompress(origAfterDelta)
				if len(newBuf2) < len(buf) {
					buf = newBuf2
					didLookback = false
				}
			}
		}
	}

	res := chunkResult{diffFlag: byte(stride), payload: buf}
	if didLookback {
		res.lookbackFlag = byte(int8(level))
	}
	if didHuff {
		res.huffFlag = 1
	}
	return res
}

// decodeChunk reverses encodeChunk: undo Huffman, then lookback, then
// delta, each only if its flag says the stage ran.
func decodeChunk(payload []byte, diffFlag, lookbackFlag, huffFlag byte, decompLen int) ([]byte, error) {
	buf := payload

	if huffFlag != 0 {
		out, err := huffmanDecompress(buf)
		if err != nil {
			return nil, err
		}
		buf = out
	}

	if lookbackFlag != 0 {
		out, err := lookbackDecompress(buf)
		if err != nil {
			return nil, err
		}
		buf = out
	}

	if diffFlag != 0 {
		if huffFlag == 0 && lookbackFlag == 0 {
			// Neither earlier stage ran, so buf still aliases the caller's
			// payload slice; copy before mutating in place.
			buf = append([]byte(nil), buf...)
		}
		deltaDecode(buf, int(diffFlag))
	}

	if len(buf) != decompLen {
		return nil, ErrTruncated
	}
	return buf, nil
}
