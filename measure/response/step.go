package response

import (
	"math"

	"github.com/cwbudde/algo-control/control/iir"
)

// StepResult holds step-response measurements of a record, with times
// expressed in samples.
type StepResult struct {
	Output        []float64 // the simulated output sequence
	FinalValue    float64   // last simulated output
	Peak          float64   // output sample farthest from zero
	PeakIndex     int       // sample index of the peak
	Overshoot     float64   // (peak - final) / |final|, 0 when final is 0 or peak does not exceed it
	SettlingIndex int       // first index after which the output stays within the tolerance band
}

// AnalyzeStep drives the record with a constant input of the given
// amplitude from zero history for the given number of steps and
// measures the response, including the effect of offset and
// saturation. The settling band is tol*|FinalValue| around FinalValue
// (tol absolute when FinalValue is 0).
func AnalyzeStep(c iir.Coefficients, amplitude float64, steps int, tol float64) (StepResult, error) {
	if steps <= 0 {
		return StepResult{}, ErrInvalidSteps
	}
	if tol <= 0 {
		return StepResult{}, ErrInvalidTolerance
	}

	var xy iir.State

	out := make([]float64, steps)
	for i := range out {
		out[i] = c.Update(&xy, amplitude, false)
	}

	r := StepResult{
		Output:     out,
		FinalValue: out[steps-1],
	}

	for i, y := range out {
		if math.Abs(y) > math.Abs(r.Peak) {
			r.Peak = y
			r.PeakIndex = i
		}
	}

	if r.FinalValue != 0 {
		over := (math.Abs(r.Peak) - math.Abs(r.FinalValue)) / math.Abs(r.FinalValue)
		if over > 0 {
			r.Overshoot = over
		}
	}

	band := tol * math.Abs(r.FinalValue)
	if band == 0 {
		band = tol
	}

	r.SettlingIndex = steps - 1
	for i := steps - 1; i >= 0; i-- {
		if math.Abs(out[i]-r.FinalValue) > band {
			break
		}
		r.SettlingIndex = i
	}

	return r, nil
}
