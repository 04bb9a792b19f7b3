package capture

import "strconv"

// Badge is one labeled status value rendered by a stage screen.
type Badge struct {
	Label string
	Value string
}

// View is the fixed display payload of a capturing stage.
type View struct {
	Stage       Stage
	Section     string
	Title       string
	Subtitle    string
	Badges      []Badge
	Instruction string
	Forward     string
	UpNext      string
}

// Heading returns the screen header, e.g. "Shuttle Run • Step 2 of 5".
func (v View) Heading() string {
	return "Shuttle Run • Step " + strconv.Itoa(int(v.Stage)) + " of " + strconv.Itoa(CaptureSteps)
}

// MockCalibration is the calibration the Calibration stage always reports.
var MockCalibration = CalibrationData{
	ConesDetected: true,
	Distance:      "5.0m",
	LeftCone:      "Aligned",
	RightCone:     "Aligned",
	RunPath:       "Clear",
	EstimatedTime: "00:20s",
	Attempts:      2,
	Safety:        "Cleared",
}

var views = map[Stage]View{
	StageSetup: {
		Stage:    StageSetup,
		Section:  "Setup Camera",
		Title:    "Position Your Device",
		Subtitle: "Place phone 3m away at hip height. Ensure cones are visible.",
		Badges: []Badge{
			{"Frame", "OK"},
			{"Lighting", "Good"},
			{"Auto Track", "On"},
			{"Cone Distance", "5m"},
			{"Surface", "Flat, dry"},
			{"Footwear", "Trainers"},
		},
		Instruction: "Align the center guide with both cones. Step back until your full body fits in frame.",
		Forward:     "Continue",
		UpNext:      "Calibrate Your Space",
	},
	StageCalibration: {
		Stage:    StageCalibration,
		Section:  "Warm-up & Calibration",
		Title:    "Calibrate Your Space",
		Subtitle: "Cones detected and run path measured.",
		Badges: []Badge{
			{"Cones", "Detected"},
			{"Distance", MockCalibration.Distance},
			{"Left Cone", MockCalibration.LeftCone},
			{"Right Cone", MockCalibration.RightCone},
			{"Run Path", MockCalibration.RunPath},
			{"Estimated Time", MockCalibration.EstimatedTime},
			{"Attempts", strconv.Itoa(MockCalibration.Attempts)},
			{"Safety", MockCalibration.Safety},
		},
		Instruction: "Coach tip: turn cues and pacing are announced by voice.",
		Forward:     "Begin Warm-up",
		UpNext:      "Guided Warm-up",
	},
	StageWarmup: {
		Stage:    StageWarmup,
		Section:  "Warm-up • Guided",
		Title:    "Guided Warm-up",
		Subtitle: "Set your start stance. We'll count reps and time.",
		Badges: []Badge{
			{"Timer", "00:30"},
			{"Sets", "2"},
			{"HR", "98 bpm"},
			{"RPE", "Easy"},
			{"Drill", "2 x 10m Easy Shuttle"},
			{"Focus", "Turn control • Breathing"},
			{"Form Check", "Knees soft, chest up"},
			{"Readiness", "Building heat"},
		},
		Instruction: "Cues on. Keep turns controlled and breathe steadily.",
		Forward:     "Warm-up Done",
		UpNext:      "Test Prep",
	},
	StageTestPrep: {
		Stage:    StageTestPrep,
		Section:  "Test Prep • Setup",
		Title:    "Set Start Position",
		Subtitle: "We'll auto-time, count touches, and flag form breaks.",
		Badges: []Badge{
			{"Frame Layout", "OK"},
			{"Lighting", "OK"},
			{"Distance", "10m"},
			{"Cones", "2 visible"},
			{"Stance", "Dominant foot forward"},
			{"Start Line", "Toe behind line"},
			{"Calibration", "Ready"},
			{"Audio", "3-2-1 countdown"},
		},
		Instruction: "SAI check passed. Hold your stance until the countdown ends.",
		Forward:     "Start Test",
		UpNext:      "Shuttle Run",
	},
	StageLiveTest: {
		Stage:    StageLiveTest,
		Section:  "Live Test",
		Title:    "Live Timing",
		Subtitle: "Auto-detect touches, SAI-compliant timing.",
		Badges: []Badge{
			{"Mode", "SAI"},
			{"Tracking", "On"},
			{"AI Assist", "On"},
			{"Touches", "0"},
			{"Splits", "0"},
			{"Attempt", "1 of 2"},
			{"Form", "Monitoring"},
		},
		Instruction: "Ready to start on beep.",
		Forward:     "Finish Attempt",
		UpNext:      "Review & Save",
	},
}

// ViewFor returns the display payload of a capturing stage. Results has no
// View; see MockResults.
func ViewFor(stage Stage) (View, bool) {
	v, ok := views[stage]
	return v, ok
}

// CompletionFor returns the literal result a stage reports when its forward
// action is taken. LiveTest results depend on the stopwatch and are built by
// NewLiveTestResult instead.
func CompletionFor(stage Stage) (StepResult, bool) {
	switch stage {
	case StageSetup:
		return SetupResult{SetupComplete: true}, true
	case StageCalibration:
		return CalibrationResult{Data: MockCalibration}, true
	case StageWarmup:
		return WarmupResult{WarmupComplete: true}, true
	case StageTestPrep:
		return TestPrepResult{TestPrepComplete: true}, true
	}
	return nil, false
}

// Results is the payload rendered by the Results screen.
type Results struct {
	Time        string
	Touches     int
	Splits      int
	Attempts    int
	Grade       string
	Improvement string
	Analysis    []string
}

// MockResults is shown on the Results screen regardless of what the wizard
// accumulated.
var MockResults = Results{
	Time:        "00:12.45",
	Touches:     8,
	Splits:      4,
	Attempts:    1,
	Grade:       "B+",
	Improvement: "+0.8s",
	Analysis: []string{
		"Excellent acceleration in the first 2 meters",
		"Consistent pacing throughout the test",
		"Consider improving turn technique for faster direction changes",
	},
}
