package main

import (
	"fmt"
	"io"

	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/obj"
	"github.com/milk9111/stormtravel/render"
	"github.com/milk9111/stormtravel/system"
)

// runner feeds scripted events to a controller at a fixed frame time and
// lets the game settle between them.
type runner struct {
	loop      *system.Loop
	dt        float64
	maxSettle int
	out       io.Writer
	surface   *render.Recorder

	accepted int
	rejected int
}

func newRunner(loop *system.Loop, dt float64, out io.Writer) *runner {
	return &runner{
		loop:      loop,
		dt:        dt,
		maxSettle: int(10 / dt),
		out:       out,
		surface:   render.NewRecorder(common.BaseWidth, common.BaseHeight),
	}
}

// settled reports whether the controller is idle: no move in flight and no
// fade still running.
func (r *runner) settled() bool {
	c := r.loop.Controller
	switch c.State() {
	case system.StateEnding, system.StateDead, system.StateTooManyMoves:
		return c.Player().Ready()
	case system.StatePlaying:
		stage := c.Stage()
		return c.Player().Ready() && c.Player().CanMove(&obj.Context{World: stage.World, Offset: c.Offset()})
	default:
		return false
	}
}

func (r *runner) settle() {
	for i := 0; i < r.maxSettle && !r.settled(); i++ {
		r.loop.StepFixed(r.dt, nil)
	}
}

// run applies every event and reports each stage change.
func (r *runner) run(events []obj.Event) system.Snapshot {
	c := r.loop.Controller
	r.settle()
	r.report("start")

	for _, ev := range events {
		before := c.Snapshot()
		r.loop.StepFixed(r.dt, []obj.Event{ev})
		after := c.Snapshot()

		if ev.Kind == obj.EventMove {
			if after.MoveCount != before.MoveCount || after.Index != before.Index {
				r.accepted++
			} else {
				r.rejected++
				fmt.Fprintf(r.out, "rejected %s at %s\n", ev.Dir, before.Grid)
			}
		}

		r.settle()
		if now := c.Snapshot(); now.Index != before.Index || now.State != before.State {
			r.report(fmt.Sprintf("after %s", eventName(ev)))
		}
	}
	return c.Snapshot()
}

func (r *runner) report(label string) {
	c := r.loop.Controller
	tiles := 0
	if stage := c.Stage(); stage != nil {
		r.surface.Reset()
		tiles = stage.Draw(r.surface, c.Offset())
	}
	fmt.Fprintf(r.out, "%-14s %s tiles=%d\n", label, c.Snapshot(), tiles)
}

func eventName(ev obj.Event) string {
	switch ev.Kind {
	case obj.EventMove:
		return ev.Dir.String()
	case obj.EventRestart:
		return "restart"
	default:
		return "event"
	}
}
