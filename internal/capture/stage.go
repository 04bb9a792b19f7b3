package capture

import "fmt"

// Stage identifies one screen of the capture flow.
type Stage int

// Capture stages in flow order.
const (
	StageSetup Stage = iota + 1
	StageCalibration
	StageWarmup
	StageTestPrep
	StageLiveTest
	StageResults
)

// Stages lists every stage in flow order.
var Stages = []Stage{
	StageSetup,
	StageCalibration,
	StageWarmup,
	StageTestPrep,
	StageLiveTest,
	StageResults,
}

// FirstStage and LastStage bound the flow.
const (
	FirstStage = StageSetup
	LastStage  = StageResults
)

// CaptureSteps is the number of stages that collect input (Results excluded).
const CaptureSteps = 5

var stageNames = map[Stage]string{
	StageSetup:       "setup",
	StageCalibration: "calibration",
	StageWarmup:      "warmup",
	StageTestPrep:    "test-prep",
	StageLiveTest:    "live-test",
	StageResults:     "results",
}

// String returns the stable, lowercase name of the stage.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Valid reports whether s is one of the six known stages.
func (s Stage) Valid() bool {
	return s >= FirstStage && s <= LastStage
}

// IsTerminal reports whether the stage has no forward transition.
func (s Stage) IsTerminal() bool {
	return s == StageResults
}

// Progress returns the completion percentage shown in a step's progress bar.
// Results reports 100.
func (s Stage) Progress() int {
	if !s.Valid() {
		return 0
	}
	if s.IsTerminal() {
		return 100
	}
	return int(s) * 100 / CaptureSteps
}
