package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/stormtravel/common"
)

type EventKind int

const (
	EventMove EventKind = iota
	EventRestart
	EventQuit
	EventPause
	EventCopyDebug
)

// Event is one discrete input for the frame.
type Event struct {
	Kind EventKind
	Dir  common.Direction
}

func MoveEvent(d common.Direction) Event { return Event{Kind: EventMove, Dir: d} }
func RestartEvent() Event                { return Event{Kind: EventRestart} }
func QuitEvent() Event                   { return Event{Kind: EventQuit} }

var moveKeys = []struct {
	key ebiten.Key
	dir common.Direction
}{
	{ebiten.KeyArrowUp, common.DirUp},
	{ebiten.KeyArrowDown, common.DirDown},
	{ebiten.KeyArrowLeft, common.DirLeft},
	{ebiten.KeyArrowRight, common.DirRight},
	{ebiten.KeyW, common.DirUp},
	{ebiten.KeyS, common.DirDown},
	{ebiten.KeyA, common.DirLeft},
	{ebiten.KeyD, common.DirRight},
}

// Input turns key releases into events. Moves fire on release so holding a
// key never repeats a move.
type Input struct {
	events []Event
}

func NewInput() *Input {
	return &Input{}
}

// Poll returns the events of this frame. The slice is reused across calls.
func (i *Input) Poll() []Event {
	i.events = i.events[:0]

	for _, m := range moveKeys {
		if inpututil.IsKeyJustReleased(m.key) {
			i.events = append(i.events, MoveEvent(m.dir))
		}
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyR) {
		i.events = append(i.events, RestartEvent())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.events = append(i.events, Event{Kind: EventPause})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		i.events = append(i.events, Event{Kind: EventCopyDebug})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) || ebiten.IsWindowBeingClosed() {
		i.events = append(i.events, QuitEvent())
	}

	return i.events
}
