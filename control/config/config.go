package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-control/control/iir"
)

// Errors returned when decoding or validating a coefficient record.
var (
	ErrMissingField = errors.New("config: missing required field")
	ErrTapCount     = errors.New("config: wrong ba tap count")
	ErrNotFinite    = errors.New("config: value must be finite")
	ErrLimitNaN     = errors.New("config: limit must not be NaN")
	ErrLimitOrder   = errors.New("config: y_min exceeds y_max")
)

// wireRecord mirrors the JSON shape with pointer fields so that absent
// keys are distinguishable from zero values.
type wireRecord struct {
	BA      *[]float64 `json:"ba"`
	YOffset *float64   `json:"y_offset"`
	YMin    *float64   `json:"y_min"`
	YMax    *float64   `json:"y_max"`
}

// Parse decodes and validates a JSON coefficient record. All four
// fields must be present and ba must hold exactly [iir.NumTaps] values.
func Parse(data []byte) (iir.Coefficients, error) {
	var w wireRecord

	err := json.Unmarshal(data, &w)
	if err != nil {
		return iir.Coefficients{}, fmt.Errorf("config: decode record: %w", err)
	}

	switch {
	case w.BA == nil:
		return iir.Coefficients{}, fmt.Errorf("%w: ba", ErrMissingField)
	case w.YOffset == nil:
		return iir.Coefficients{}, fmt.Errorf("%w: y_offset", ErrMissingField)
	case w.YMin == nil:
		return iir.Coefficients{}, fmt.Errorf("%w: y_min", ErrMissingField)
	case w.YMax == nil:
		return iir.Coefficients{}, fmt.Errorf("%w: y_max", ErrMissingField)
	}

	if len(*w.BA) != iir.NumTaps {
		return iir.Coefficients{}, fmt.Errorf("%w: got %d, want %d", ErrTapCount, len(*w.BA), iir.NumTaps)
	}

	var c iir.Coefficients
	copy(c.BA[:], *w.BA)
	c.YOffset = *w.YOffset
	c.YMin = *w.YMin
	c.YMax = *w.YMax

	err = Validate(c)
	if err != nil {
		return iir.Coefficients{}, err
	}

	return c, nil
}

// Encode marshals a record into its JSON wire form.
func Encode(c iir.Coefficients) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode record: %w", err)
	}
	return data, nil
}

// Validate checks the invariants the update path trusts: finite taps
// and offset, non-NaN limits in the right order. Limits may be
// infinite to disable saturation on either side.
func Validate(c iir.Coefficients) error {
	for i, tap := range c.BA {
		if math.IsNaN(tap) || math.IsInf(tap, 0) {
			return fmt.Errorf("%w: ba[%d] = %v", ErrNotFinite, i, tap)
		}
	}

	if math.IsNaN(c.YOffset) || math.IsInf(c.YOffset, 0) {
		return fmt.Errorf("%w: y_offset = %v", ErrNotFinite, c.YOffset)
	}

	if math.IsNaN(c.YMin) || math.IsNaN(c.YMax) {
		return ErrLimitNaN
	}

	if c.YMin > c.YMax {
		return fmt.Errorf("%w: %v > %v", ErrLimitOrder, c.YMin, c.YMax)
	}

	return nil
}

// Load reads and parses a record from a JSON file.
func Load(path string) (iir.Coefficients, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return iir.Coefficients{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Save writes a record to path as JSON.
func Save(path string, c iir.Coefficients) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}
