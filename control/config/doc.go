// Package config is the configuration side of the control filter: it
// decodes, validates, persists, and publishes [iir.Coefficients]
// records.
//
// The wire format is a JSON object with the fields "ba" (13 numbers),
// "y_offset", "y_min", and "y_max"; all four must be present. Records
// are validated here, at the slow configuration boundary, so that the
// per-sample update path can stay branch-free and trust its inputs.
//
// A [Store] hands complete record snapshots to a real-time consumer via
// an atomic pointer swap: the update path never observes a half-written
// record, which is the precondition the filter core relies on for
// bump-less live reconfiguration.
package config
