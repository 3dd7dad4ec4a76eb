package iir

import (
	"github.com/cwbudde/algo-vecmath"
)

// macc returns offset + sum(a[i]*b[i]), evaluated through the SIMD
// dot-product kernel. Summation order is unspecified; results are
// deterministic for fixed inputs but not bit-identical across
// architectures.
func macc(offset float64, a, b []float64) float64 {
	return offset + vecmath.DotProduct(a, b)
}

// clamp limits y to [lo, hi]. Inverted bounds are not reordered, and a
// NaN y compares false against both bounds and is returned unchanged.
func clamp(y, lo, hi float64) float64 {
	if y < lo {
		return lo
	}

	if y > hi {
		return hi
	}

	return y
}

// Update feeds the input sample x0 into the channel history xy and
// returns the new clamped output. Only xy is modified; the record
// itself is read-only during the call.
//
// With hold set, the previous output is re-emitted instead of computing
// a new one. The history still advances, so the input side keeps aging
// during a hold, and the held value is still clamped against the
// current limits.
//
// Update allocates nothing and performs a fixed amount of work per
// call. A NaN input or coefficient propagates NaN through the sum and
// through the clamp.
func (c *Coefficients) Update(xy *State, x0 float64, hold bool) float64 {
	// xy holds            [x0..x5, y0..y6]
	// Advance time        [x1..x6, y1..y7], oldest output dropped
	copy(xy[1:], xy[:NumTaps-1])
	// Store the input     [x0..x6, y1..y6]
	xy[0] = x0

	var y0 float64
	if hold {
		y0 = xy[Order+1]
	} else {
		y0 = macc(c.YOffset, xy[:], c.BA[:])
	}

	// Only the clamped value is stored, so future feed-back terms see
	// the saturated output. That is the entire anti-windup mechanism.
	y0 = clamp(y0, c.YMin, c.YMax)
	xy[Order] = y0

	return y0
}
