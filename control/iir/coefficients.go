package iir

// Order is the filter order.
const Order = 6

// NumTaps is the length of the tap vector and of a [State] buffer:
// Order+1 feed-forward taps plus Order feed-back taps.
const NumTaps = 2*Order + 1

// Coefficients is the configuration record of one filter: tap gains,
// output offset, and output saturation limits. It is a small value
// type; the configuration layer replaces it wholesale and Update treats
// it as read-only, so one record can drive any number of channels.
//
// The JSON field names form the wire contract with the configuration
// mechanism: "ba", "y_offset", "y_min", "y_max".
type Coefficients struct {
	// BA contains the feed-forward coefficients b0..b6 followed by the
	// negated feed-back coefficients -a1..-a6, normalized so that the
	// implicit a0 = 1.
	BA [NumTaps]float64 `json:"ba"`

	// YOffset is added to every computed output (set-point bias).
	YOffset float64 `json:"y_offset"`

	// YMin and YMax are the output saturation limits. YMin <= YMax is a
	// caller obligation; inverted limits invert the clamp rather than
	// being reordered.
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// New returns a record with zero taps and offset and the given output
// limits. A zero-tap record outputs clamp(YOffset, YMin, YMax) for any
// input, which makes it the safe inert default.
func New(yMin, yMax float64) Coefficients {
	return Coefficients{YMin: yMin, YMax: yMax}
}
