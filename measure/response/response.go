// Package response provides offline diagnostics for configured control
// filter records: FFT-based magnitude spectra and step-response
// metrics. It operates on [iir.Coefficients] values and never touches a
// live channel's history.
package response

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-control/control/iir"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response analysis functions.
var (
	ErrInvalidFFTSize   = errors.New("response: fft size must be at least 2")
	ErrInvalidSteps     = errors.New("response: step count must be positive")
	ErrInvalidTolerance = errors.New("response: tolerance must be positive")
)

// MagnitudeSpectrum returns |H(k)| for bins 0..fftSize/2 of the
// record's linearized impulse response (offset and limits excluded, as
// in [iir.Coefficients.ImpulseResponse]). The IR is truncated to
// fftSize samples, so very slowly decaying filters need a larger size
// for accurate low-frequency bins.
func MagnitudeSpectrum(c iir.Coefficients, fftSize int) ([]float64, error) {
	if fftSize < 2 {
		return nil, ErrInvalidFFTSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	ir := c.ImpulseResponse(fftSize)

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	err = plan.Forward(out, in)
	if err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	nBins := fftSize/2 + 1
	re := make([]float64, nBins)
	im := make([]float64, nBins)
	for i := range nBins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, nBins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
