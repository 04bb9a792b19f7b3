// Package capture implements the guided Shuttle Run capture wizard.
//
// The wizard walks an athlete through six ordered stages (Setup, Calibration,
// Warmup, TestPrep, LiveTest, Results). A Controller owns the current stage and
// the accumulated step output; step screens only report intent upward by
// calling Advance with their typed StepResult or Retreat.
//
// Stages move strictly forward and backward one at a time. The only
// non-adjacent edge is Restart, which returns to Setup. All measurement values
// shown by the steps are fixed mock payloads (see Views and MockResults).
package capture
