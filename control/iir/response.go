package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the
// record's transfer function at the given frequency (Hz) and sample
// rate (Hz). Offset and limits are not part of the transfer function.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z := cmplx.Exp(complex(0, -w)) // z^-1

	// Numerator b0 + b1 z^-1 + ... + b6 z^-6 by Horner in z^-1.
	num := complex(c.BA[Order], 0)
	for k := Order - 1; k >= 0; k-- {
		num = num*z + complex(c.BA[k], 0)
	}

	// Denominator 1 + a1 z^-1 + ... + a6 z^-6; BA stores -a1..-a6.
	den := complex(-c.BA[NumTaps-1], 0)
	for k := NumTaps - 2; k > Order; k-- {
		den = den*z + complex(-c.BA[k], 0)
	}
	den = den*z + 1

	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// DCGain returns H(1), the steady-state input-to-output gain excluding
// offset and limits.
func (c *Coefficients) DCGain() float64 {
	var num float64
	for k := 0; k <= Order; k++ {
		num += c.BA[k]
	}

	den := 1.0
	for k := Order + 1; k < NumTaps; k++ {
		den -= c.BA[k]
	}

	return num / den
}

// ImpulseResponse computes n samples of the linearized impulse
// response h[n]: the record's difference equation with offset removed
// and limits opened, run from zero history. The record itself is not
// modified.
func (c *Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	lin := *c
	lin.YOffset = 0
	lin.YMin = math.Inf(-1)
	lin.YMax = math.Inf(1)

	var xy State

	ir := make([]float64, n)
	ir[0] = lin.Update(&xy, 1, false)
	for i := 1; i < n; i++ {
		ir[i] = lin.Update(&xy, 0, false)
	}

	return ir
}
