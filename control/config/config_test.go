package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-control/control/iir"
)

func sampleRecord() iir.Coefficients {
	c := iir.New(-2.5, 2.5)
	c.YOffset = 0.125
	for i := range c.BA {
		c.BA[i] = float64(i) * 0.0625
	}
	return c
}

func TestEncodeParse_RoundTrip(t *testing.T) {
	want := sampleRecord()

	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestParse_WireFieldNames(t *testing.T) {
	raw := `{
		"ba": [1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0],
		"y_offset": 0.5,
		"y_min": -1,
		"y_max": 1
	}`

	c, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.BA[0] != 1 || c.YOffset != 0.5 || c.YMin != -1 || c.YMax != 1 {
		t.Fatalf("unexpected record: %+v", c)
	}
}

func TestParse_MissingField(t *testing.T) {
	cases := map[string]string{
		"ba":       `{"y_offset": 0, "y_min": -1, "y_max": 1}`,
		"y_offset": `{"ba": [0,0,0,0,0,0,0,0,0,0,0,0,0], "y_min": -1, "y_max": 1}`,
		"y_min":    `{"ba": [0,0,0,0,0,0,0,0,0,0,0,0,0], "y_offset": 0, "y_max": 1}`,
		"y_max":    `{"ba": [0,0,0,0,0,0,0,0,0,0,0,0,0], "y_offset": 0, "y_min": -1}`,
	}
	for field, raw := range cases {
		_, err := Parse([]byte(raw))
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("%s absent: got %v, want ErrMissingField", field, err)
		}
	}
}

func TestParse_TapCount(t *testing.T) {
	raw := `{"ba": [1, 2, 3], "y_offset": 0, "y_min": -1, "y_max": 1}`
	_, err := Parse([]byte(raw))
	if !errors.Is(err, ErrTapCount) {
		t.Fatalf("got %v, want ErrTapCount", err)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"ba": [`))
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	good := sampleRecord()
	if err := Validate(good); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	// Infinite limits are allowed (saturation disabled).
	open := good
	open.YMin, open.YMax = math.Inf(-1), math.Inf(1)
	if err := Validate(open); err != nil {
		t.Fatalf("open limits rejected: %v", err)
	}

	nanTap := good
	nanTap.BA[3] = math.NaN()
	if err := Validate(nanTap); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN tap: got %v, want ErrNotFinite", err)
	}

	infTap := good
	infTap.BA[0] = math.Inf(1)
	if err := Validate(infTap); !errors.Is(err, ErrNotFinite) {
		t.Errorf("Inf tap: got %v, want ErrNotFinite", err)
	}

	nanOffset := good
	nanOffset.YOffset = math.NaN()
	if err := Validate(nanOffset); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN offset: got %v, want ErrNotFinite", err)
	}

	nanLimit := good
	nanLimit.YMax = math.NaN()
	if err := Validate(nanLimit); !errors.Is(err, ErrLimitNaN) {
		t.Errorf("NaN limit: got %v, want ErrLimitNaN", err)
	}

	inverted := good
	inverted.YMin, inverted.YMax = 1, -1
	if err := Validate(inverted); !errors.Is(err, ErrLimitOrder) {
		t.Errorf("inverted limits: got %v, want ErrLimitOrder", err)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.json")
	want := sampleRecord()

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
