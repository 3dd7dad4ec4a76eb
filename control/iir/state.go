package iir

// State is the history buffer of one signal channel: the most recent
// Order+1 inputs followed by the most recent Order outputs, most recent
// first within each half. The zero value is ready to use; after the
// first call to [Coefficients.Update] every slot holds a previously
// seen sample.
//
// A State belongs to exactly one channel and one writer at a time. It
// is deliberately separate from [Coefficients] so that a single record
// can filter many channels and a record swap never disturbs history.
type State [NumTaps]float64

// Reset zeroes the history, returning the channel to its start-up
// condition.
func (s *State) Reset() {
	*s = State{}
}

// Output returns the most recently emitted output sample, zero if no
// update has run yet.
func (s *State) Output() float64 {
	return s[Order]
}
