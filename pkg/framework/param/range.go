package param

import (
	"math"

	"github.com/volki9000/monitorsend/pkg/dsp/gain"
)

// Range maps between a normalized control position in [0,1] and a plain
// parameter value.
type Range interface {
	// Map converts a normalized position to a plain value.
	Map(normalized float64) float64
	// Unmap converts a plain value back to a normalized position,
	// clamped to [0,1].
	Unmap(plain float64) float64
	// Bounds returns the plain-value endpoints of the range.
	Bounds() (min, max float64)
}

// LinearRange interpolates linearly between Min and Max.
type LinearRange struct {
	Min float64
	Max float64
}

// Map converts a normalized position to a plain value.
func (r LinearRange) Map(normalized float64) float64 {
	return r.Min + clamp01(normalized)*(r.Max-r.Min)
}

// Unmap converts a plain value back to a normalized position.
func (r LinearRange) Unmap(plain float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return clamp01((plain - r.Min) / (r.Max - r.Min))
}

// Bounds returns the plain-value endpoints.
func (r LinearRange) Bounds() (float64, float64) { return r.Min, r.Max }

// SkewedRange warps the normalized position with an exponent before the
// linear interpolation:
//
//	plain = Min + (Max-Min) * normalized^Skew
//
// Skew > 1 concentrates control resolution towards the top of the range,
// which is what a wide-range gain control wants: fine steps around unity,
// coarse steps down at the floor. The mapping is monotonically
// non-decreasing for any positive Skew.
type SkewedRange struct {
	Min  float64
	Max  float64
	Skew float64
}

// Map converts a normalized position to a plain value.
func (r SkewedRange) Map(normalized float64) float64 {
	return r.Min + (r.Max-r.Min)*math.Pow(clamp01(normalized), r.Skew)
}

// Unmap converts a plain value back to a normalized position. Out-of-range
// values are clamped to the bounds first.
func (r SkewedRange) Unmap(plain float64) float64 {
	if r.Max <= r.Min || r.Skew <= 0 {
		return 0
	}
	if plain < r.Min {
		plain = r.Min
	} else if plain > r.Max {
		plain = r.Max
	}
	return math.Pow((plain-r.Min)/(r.Max-r.Min), 1.0/r.Skew)
}

// Bounds returns the plain-value endpoints.
func (r SkewedRange) Bounds() (float64, float64) { return r.Min, r.Max }

// SkewForMidpoint solves the exponent that makes Map(0.5) equal mid for a
// range from min to max. Degenerate inputs fall back to a linear curve.
func SkewForMidpoint(min, max, mid float64) float64 {
	if max <= min {
		return 1
	}
	ratio := (mid - min) / (max - min)
	if ratio <= 0 || ratio >= 1 {
		return 1
	}
	return math.Log(ratio) / math.Log(0.5)
}

// GainRange builds the skewed amplitude range used by gain controls. The
// bounds are given in decibels and converted to linear amplitude; the skew
// is chosen so that the midpoint of the anchor span (also in decibels) sits
// at the control's half position.
func GainRange(minDB, maxDB, anchorMinDB, anchorMaxDB float64) SkewedRange {
	min := gain.DbToLinear(minDB)
	max := gain.DbToLinear(maxDB)
	mid := gain.DbToLinear((anchorMinDB + anchorMaxDB) / 2)
	return SkewedRange{
		Min:  min,
		Max:  max,
		Skew: SkewForMidpoint(min, max, mid),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
