package capture

// Event is a user intent reported by a stage screen.
type Event int

// Wizard events.
const (
	EventComplete Event = iota
	EventBack
	EventRetry
)

func (e Event) String() string {
	switch e {
	case EventComplete:
		return "complete"
	case EventBack:
		return "back"
	case EventRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// Effect is a side effect the host must perform after a transition.
type Effect int

// Transition effects.
const (
	EffectNone Effect = iota
	// EffectExit asks the host to unmount the wizard.
	EffectExit
)

// Transition is the wizard state machine. It returns the next stage and the
// effect the host must apply. Complete at Results and Back at Setup keep the
// stage; the latter reports EffectExit.
func Transition(stage Stage, event Event) (Stage, Effect) {
	if !stage.Valid() {
		return FirstStage, EffectNone
	}

	switch event {
	case EventComplete:
		if stage.IsTerminal() {
			return stage, EffectNone
		}
		return stage + 1, EffectNone

	case EventBack:
		if stage == FirstStage {
			return stage, EffectExit
		}
		return stage - 1, EffectNone

	case EventRetry:
		return FirstStage, EffectNone
	}

	return stage, EffectNone
}
