// Package stroke accumulates one player's air-drawn line segments.
package stroke

import (
	"github.com/bloops-games/doodleduel/internal/duel/zone"
)

const DefaultThickness = 4

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type Segment struct {
	From      zone.Point `json:"from"`
	To        zone.Point `json:"to"`
	Color     Color      `json:"color"`
	Thickness int        `json:"thickness"`
}

// Surface is a player's persistent drawing: the ordered segments drawn since
// the last clear.
type Surface struct {
	segments []Segment
}

func (s *Surface) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Surface) Len() int {
	return len(s.segments)
}

func (s *Surface) Empty() bool {
	return len(s.segments) == 0
}

func (s *Surface) add(seg Segment) {
	s.segments = append(s.segments, seg)
}

func (s *Surface) clear() {
	s.segments = s.segments[:0]
}
