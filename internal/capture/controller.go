package capture

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Observer is notified after every applied transition.
type Observer interface {
	ObserveTransition(from, to Stage, event Event)
}

// Controller owns the wizard state: the current stage and the accumulated
// step output. It is not safe for concurrent use; the UI event loop is its
// only caller.
type Controller struct {
	id           string
	stage        Stage
	data         Data
	attempt      int
	resetOnRetry bool

	onExit   func()
	log      logr.Logger
	observer Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithExitHandler sets the callback invoked when the wizard asks its host to
// unmount it.
func WithExitHandler(fn func()) Option {
	return func(c *Controller) { c.onExit = fn }
}

// WithLogger sets the logger used for transition traces.
func WithLogger(log logr.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithObserver registers a transition observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithResetOnRetry makes Restart also clear the accumulated data.
func WithResetOnRetry(reset bool) Option {
	return func(c *Controller) { c.resetOnRetry = reset }
}

// NewController mounts a wizard at the Setup stage.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		id:      uuid.NewString(),
		stage:   FirstStage,
		attempt: 1,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithValues("session", c.id)
	c.log.V(1).Info("capture session started", "stage", c.stage.String())
	return c
}

// ID returns the session identifier assigned at mount.
func (c *Controller) ID() string { return c.id }

// Stage returns the current stage.
func (c *Controller) Stage() Stage { return c.stage }

// Attempt returns the 1-based run number; Restart increments it.
func (c *Controller) Attempt() int { return c.attempt }

// Data returns a copy of the accumulated step output.
func (c *Controller) Data() Data { return c.data.Clone() }

// Advance merges the result of the current stage and moves one stage forward.
// At Results it does nothing. A result produced by a different stage is
// rejected and the state is left untouched.
func (c *Controller) Advance(result StepResult) error {
	if c.stage.IsTerminal() {
		return nil
	}
	if result == nil || result.Stage() != c.stage {
		return fmt.Errorf("advance %s: %w", c.stage, ErrPayloadMismatch)
	}

	c.data.Merge(result)
	c.apply(EventComplete)
	return nil
}

// Retreat moves one stage back, keeping the accumulated data. At Setup it
// invokes the exit callback instead.
func (c *Controller) Retreat() {
	c.apply(EventBack)
}

// Restart returns to Setup from any stage.
func (c *Controller) Restart() {
	if c.resetOnRetry {
		c.data = Data{}
	}
	c.attempt++
	c.apply(EventRetry)
}

// Exit asks the host to unmount the wizard without changing the stage.
func (c *Controller) Exit() {
	c.log.V(1).Info("capture session exited", "stage", c.stage.String())
	if c.onExit != nil {
		c.onExit()
	}
}

func (c *Controller) apply(event Event) {
	from := c.stage
	to, effect := Transition(from, event)
	c.stage = to

	c.log.V(1).Info("capture transition", "from", from.String(), "to", to.String(), "event", event.String())
	if c.observer != nil {
		c.observer.ObserveTransition(from, to, event)
	}

	if effect == EffectExit {
		c.Exit()
	}
}
