package stroke

import (
	"github.com/bloops-games/doodleduel/internal/duel/zone"
)

type PenState uint8

const (
	// PenUp: the next drawing sample only anchors the pen.
	PenUp PenState = iota + 1
	// PenDown: the next drawing sample extends the line from the anchor.
	PenDown
)

func (s PenState) String() string {
	switch s {
	case PenUp:
		return "up"
	case PenDown:
		return "down"
	default:
		return "unknown"
	}
}

func (s PenState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func NewAccumulator(color Color, thickness int) *Accumulator {
	if thickness <= 0 {
		thickness = DefaultThickness
	}

	return &Accumulator{
		state:     PenUp,
		color:     color,
		thickness: thickness,
		surface:   &Surface{},
	}
}

// Accumulator turns a stream of (point, should draw) samples into segments.
// A sample that does not draw always lifts the pen, and the first drawing
// sample after a lift only anchors, so no segment ever bridges a gap.
type Accumulator struct {
	state     PenState
	anchor    zone.Point
	color     Color
	thickness int
	surface   *Surface
}

// Update feeds one sample and returns the segment it drew, if any.
func (a *Accumulator) Update(p zone.Point, draw bool) (Segment, bool) {
	if !draw {
		a.lift()
		return Segment{}, false
	}

	switch a.state {
	case PenDown:
		seg := Segment{From: a.anchor, To: p, Color: a.color, Thickness: a.thickness}
		a.surface.add(seg)
		a.anchor = p
		return seg, true
	default:
		a.state = PenDown
		a.anchor = p
		return Segment{}, false
	}
}

// Reset clears the surface and lifts the pen.
func (a *Accumulator) Reset() {
	a.surface.clear()
	a.lift()
}

func (a *Accumulator) State() PenState {
	return a.state
}

// Anchor returns the pen position while the pen is down.
func (a *Accumulator) Anchor() (zone.Point, bool) {
	if a.state != PenDown {
		return zone.Point{}, false
	}
	return a.anchor, true
}

func (a *Accumulator) Surface() *Surface {
	return a.surface
}

func (a *Accumulator) Color() Color {
	return a.color
}

func (a *Accumulator) lift() {
	a.state = PenUp
	a.anchor = zone.Point{}
}
