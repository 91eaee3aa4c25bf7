package system

import (
	"time"

	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/obj"
)

// Loop drives the controller once per host frame with the measured frame
// time. It never blocks; the host (ebiten at TPS ticks per second) is the
// scheduler.
type Loop struct {
	Controller *Controller
	Clock      func() time.Time
	// MaxDT caps a single frame so a stall does not teleport entities.
	MaxDT float64

	last   time.Time
	frames int
}

func NewLoop(c *Controller) *Loop {
	return &Loop{
		Controller: c,
		Clock:      time.Now,
		MaxDT:      0.25,
	}
}

// Tick measures the time since the previous tick and steps the controller.
// The first tick after construction or Pause uses one nominal frame.
func (l *Loop) Tick(events []obj.Event) float64 {
	now := l.Clock()
	dt := 1.0 / common.TPS
	if !l.last.IsZero() {
		dt = now.Sub(l.last).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if l.MaxDT > 0 && dt > l.MaxDT {
		dt = l.MaxDT
	}
	l.last = now

	l.StepFixed(dt, events)
	return dt
}

// StepFixed steps the controller with a caller-chosen dt.
func (l *Loop) StepFixed(dt float64, events []obj.Event) {
	l.frames++
	l.Controller.Step(dt, events)
}

// Pause forgets the last tick time so the frame after a pause is not
// measured across it.
func (l *Loop) Pause() {
	l.last = time.Time{}
}

func (l *Loop) Frames() int {
	return l.frames
}
