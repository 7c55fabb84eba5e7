// SPDX-License-Identifier: MIT
// Source: github.com/wareya/LOH

package loh

const maxStride = 16

// deltaEncode replaces data[i] with data[i]-data[i-stride] (mod 256) for
// every i from len-1 down to stride, in place. The encoder walks
// high-to-low so each byte is read before it is overwritten.
func deltaEncode(data []byte, stride int) {
	if stride <= 0 {
		return
	}
	for i := len(data) - 1; i >= stride; i-- {
		data[i] -= data[i-stride]
	}
}

// deltaDecode is the exact inverse of deltaEncode: it walks low-to-high so
// each data[i-stride] it reads has already been restored to its original
// value.
func deltaDecode(data []byte, stride int) {
	if stride <= 0 {
		return
	}
	for i := stride; i < len(data); i++ {
		data[i] += data[i-stride]
	}
}

// deltaProbeSamples is the number of random byte pairs sampled by both the
// baseline probe and each candidate-stride probe.
const deltaProbeSamples = 4096

// deltaLCGMultiplier is the bespoke multiply-only pseudo-random step used by
// the probe. It is not a general-purpose PRNG: the autodetect heuristic
// only needs a cheap, deterministic-per-call spread over the input, and the
// original implementation's exact sequence is reproduced here so the
// autodetect decision matches byte-for-byte.
const deltaLCGMultiplier uint64 = 0xA68BF0C7

// detectStride implements the encoder-only stride autodetection in §4.3. It
// only runs when the caller passed stride 0 (handled by the chunk pipeline)
// and returns 0 (no profitable stride) unless a clear winner is found.
func detectStride(data []byte) int {
	n := uint64(len(data))
	if n < 2 {
		return 0
	}

	rnd := uint64(19529)
	next := func(step uint64) uint64 {
		rnd *= deltaLCGMultiplier + step*2
		return rnd
	}

	var seen [256]bool
	var baseline int64
	for s := uint64(0); s < deltaProbeSamples; s++ {
		a := next(s) % n
		b := next(s) % n
		diff := int64(data[a]) - int64(data[b])
		if diff < 0 {
			diff = -diff
		}
		baseline += diff
		seen[data[a]] = true
		seen[data[b]] = true
	}
	numSeen := 0
	for _, v := range seen {
		if v {
			numSeen++
		}
	}
	baseline /= deltaProbeSamples
	if numSeen <= 128 {
		return 0
	}

	origBaseline := baseline
	best := baseline
	bestStride := 0
	for stride := 1; stride <= maxStride; stride++ {
		if uint64(stride)*2 > n {
			break
		}
		var candidate int64
		for s := uint64(0); s < deltaProbeSamples; s++ {
			a := next(s) % (n - uint64(stride))
			diff := int64(data[a]) - int64(data[a+uint64(stride)])
			if diff < 0 {
				diff = -diff
			}
			candidate += diff
		}
		candidate /= deltaProbeSamples

		// Hysteresis: only switch strides when the candidate clearly beats
		// both the untransformed baseline and the best candidate so far,
		// so noisy data doesn't trigger an unprofitable delta.
		if candidate*2 < origBaseline && candidate < best {
			best = candidate
			bestStride = stride
		}
	}
	return bestStride
}
