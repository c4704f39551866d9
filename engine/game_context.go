package engine

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxFrameDelta bounds a single frame delta after a suspend or debugger pause
const maxFrameDelta = 250 * time.Millisecond

// GameContext holds the session-wide scene state shared by the main loop
type GameContext struct {
	// ===== Immutable After Init =====
	Screen    tcell.Screen
	World     *World
	Clock     Clock
	SessionID uuid.UUID
	Log       *logrus.Entry

	// ===== Atomic (Self-Synchronized) =====
	FrameNumber atomic.Int64
	IsMuted     atomic.Bool

	// ===== Main-Loop Exclusive =====
	Width  int
	Height int

	lastFrame time.Time
}

// NewGameContext creates a context with a fresh session id attached to every log entry
func NewGameContext(screen tcell.Screen, clock Clock, log logrus.FieldLogger) *GameContext {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	id := uuid.New()
	ctx := &GameContext{
		Screen:    screen,
		World:     NewWorld(),
		Clock:     clock,
		SessionID: id,
		Log:       log.WithField("session", id.String()),
		lastFrame: clock.Now(),
	}
	if screen != nil {
		ctx.Width, ctx.Height = screen.Size()
	}
	return ctx
}

// HandleResize refreshes the cached screen dimensions
func (ctx *GameContext) HandleResize() {
	if ctx.Screen == nil {
		return
	}
	ctx.Width, ctx.Height = ctx.Screen.Size()
	ctx.Screen.Sync()
}

// Tick measures the time since the previous frame and runs the world for it
func (ctx *GameContext) Tick() time.Duration {
	now := ctx.Clock.Now()
	dt := now.Sub(ctx.lastFrame)
	ctx.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	ctx.World.Update(dt)
	ctx.FrameNumber.Add(1)
	return dt
}
