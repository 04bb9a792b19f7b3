package capture

import "time"

// StepResult is the output a stage screen hands to the controller when it
// completes. The set of implementations is closed: one per capturing stage.
type StepResult interface {
	// Stage returns the stage that produces this result.
	Stage() Stage
	apply(d *Data)
}

// SetupResult is reported when the device has been positioned.
type SetupResult struct {
	SetupComplete bool
}

// CalibrationData describes the calibrated run space.
type CalibrationData struct {
	ConesDetected bool
	Distance      string
	LeftCone      string
	RightCone     string
	RunPath       string
	EstimatedTime string
	Attempts      int
	Safety        string
}

// CalibrationResult is reported when the run space has been calibrated.
type CalibrationResult struct {
	Data CalibrationData
}

// WarmupResult is reported when the guided warm-up is done.
type WarmupResult struct {
	WarmupComplete bool
}

// TestPrepResult is reported when the start position is set.
type TestPrepResult struct {
	TestPrepComplete bool
}

// TestResults is the packaged outcome of a live attempt.
type TestResults struct {
	// Time is Elapsed formatted as MM:SS.CC.
	Time     string
	Elapsed  time.Duration
	Touches  int
	Splits   int
	Attempts int
}

// LiveTestResult is reported when the athlete finishes an attempt.
type LiveTestResult struct {
	Results TestResults
}

func (SetupResult) Stage() Stage       { return StageSetup }
func (CalibrationResult) Stage() Stage { return StageCalibration }
func (WarmupResult) Stage() Stage      { return StageWarmup }
func (TestPrepResult) Stage() Stage    { return StageTestPrep }
func (LiveTestResult) Stage() Stage    { return StageLiveTest }

func (r SetupResult) apply(d *Data) { d.SetupComplete = r.SetupComplete }

func (r CalibrationResult) apply(d *Data) {
	cal := r.Data
	d.Calibration = &cal
}

func (r WarmupResult) apply(d *Data)   { d.WarmupComplete = r.WarmupComplete }
func (r TestPrepResult) apply(d *Data) { d.TestPrepComplete = r.TestPrepComplete }

func (r LiveTestResult) apply(d *Data) {
	res := r.Results
	d.TestResults = &res
}

// Data accumulates the output of every completed stage. Later stages never
// check that earlier fields are populated.
type Data struct {
	SetupComplete    bool
	Calibration      *CalibrationData
	WarmupComplete   bool
	TestPrepComplete bool
	TestResults      *TestResults
}

// Merge applies a step result onto the accumulator, overwriting only the
// fields that step owns.
func (d *Data) Merge(r StepResult) {
	if r == nil {
		return
	}
	r.apply(d)
}

// Clone returns a deep copy of the accumulator.
func (d Data) Clone() Data {
	out := d
	if d.Calibration != nil {
		cal := *d.Calibration
		out.Calibration = &cal
	}
	if d.TestResults != nil {
		res := *d.TestResults
		out.TestResults = &res
	}
	return out
}
