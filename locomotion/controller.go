package locomotion

import (
	"io"

	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/core"
	"github.com/sirupsen/logrus"
)

// Body is the character body the controller commands
// MoveTo must preempt any outstanding move; onEnd is invoked at most once on arrival
type Body interface {
	MoveTo(cmd core.MoveCommand, onEnd func())
	LookTo(cmd core.FacingCommand)
}

// Observer re-derives presentation after every controller transition
type Observer interface {
	OnLocomotionChanged(s State)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(s State)

func (f ObserverFunc) OnLocomotionChanged(s State) { f(s) }

// Config holds the command tunables
type Config struct {
	Speed float64
	Alpha float64
}

// DefaultConfig returns the stock command tunables
func DefaultConfig() Config {
	return Config{
		Speed: constants.MoveSpeed,
		Alpha: constants.FacingAlpha,
	}
}

// Controller owns the locomotion state and is the only writer of it
// Not safe for concurrent use: all calls come from the main event/render goroutine
type Controller struct {
	body      Body
	cfg       Config
	state     State
	observers []Observer
	log       logrus.FieldLogger
}

// NewController creates a controller in the Idle state with no target
func NewController(body Body, cfg Config, log logrus.FieldLogger) *Controller {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Controller{
		body: body,
		cfg:  cfg,
		log:  log,
	}
}

// Subscribe registers an observer; observers are notified in subscription order
func (c *Controller) Subscribe(o Observer) {
	c.observers = append(c.observers, o)
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	return c.state
}

// OnSurfaceClicked accepts a resolved ground point as the new target
// Supersedes any in-flight move: the new command is the cancellation
func (c *Controller) OnSurfaceClicked(p core.WorldPoint) {
	// Generation bump must precede command issue so any completion of an older move compares stale
	c.state.Generation++
	gen := c.state.Generation

	c.state.Target = p
	c.state.HasTarget = true
	c.state.Running = true

	c.log.WithFields(logrus.Fields{
		"generation": gen,
		"target":     p.String(),
	}).Debug("target accepted")

	c.body.LookTo(FacingCommandFor(p, c.cfg.Alpha))
	c.body.MoveTo(MoveCommandFor(p, c.cfg.Speed), func() {
		c.OnMoveCompleted(gen)
	})

	c.notify()
}

// OnMoveCompleted handles the engine's arrival notification for the move issued at gen
// Returns false when the notification was ignored: already idle or stale
func (c *Controller) OnMoveCompleted(gen core.Generation) bool {
	if !c.state.Running {
		return false
	}
	if gen != c.state.Generation {
		c.log.WithFields(logrus.Fields{
			"stale":   gen,
			"current": c.state.Generation,
		}).Debug("stale move completion dropped")
		return false
	}

	c.state.Running = false
	c.log.WithField("generation", gen).Debug("move completed")
	c.notify()
	return true
}

func (c *Controller) notify() {
	s := c.state
	for _, o := range c.observers {
		o.OnLocomotionChanged(s)
	}
}
