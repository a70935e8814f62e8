// Package gain provides amplitude and decibel conversion helpers used by
// the send engine and the gain parameter mapping.
package gain

import (
	"math"

	"github.com/chewxy/math32"
)

// MinDB is the decibel floor; amplitudes at or below zero report this value
// and decibel values at or below it convert to a zero amplitude.
const MinDB = -200.0

// LinearToDb converts a linear amplitude to decibels.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts a decibel value to a linear amplitude.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// LinearToDb32 is the float32 version of LinearToDb.
func LinearToDb32(linear float32) float32 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math32.Log10(linear)
}

// DbToLinear32 is the float32 version of DbToLinear.
func DbToLinear32(db float32) float32 {
	if db <= MinDB {
		return 0
	}
	return math32.Pow(10.0, db/20.0)
}

// Apply applies a gain factor to a single sample.
func Apply(sample, gain float32) float32 {
	return sample * gain
}

// ApplyBuffer applies gain to an entire buffer in-place.
func ApplyBuffer(buffer []float32, gain float32) {
	for i := range buffer {
		buffer[i] *= gain
	}
}

// ApplyBufferTo writes src scaled by gain into dst. Lengths are clamped to
// the shorter of the two buffers, so a host handing over mismatched block
// sizes can never push the loop out of bounds.
func ApplyBufferTo(src []float32, gain float32, dst []float32) {
	length := len(src)
	if len(dst) < length {
		length = len(dst)
	}

	for i := 0; i < length; i++ {
		dst[i] = src[i] * gain
	}
}
