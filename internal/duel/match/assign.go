package match

import (
	"sort"

	"github.com/bloops-games/doodleduel/internal/duel/hand"
	"github.com/bloops-games/doodleduel/internal/duel/zone"
)

// Candidate is a validated hand of the current frame and its fingertip in pixels.
type Candidate struct {
	Index int
	Hand  hand.Tracked
	Tip   zone.Point
}

// Assigner maps this frame's hands onto player slots. The result has one
// entry per slot, nil where the slot got no hand.
type Assigner interface {
	Assign(candidates []Candidate, slots int) []*Candidate
}

type AssignerFunc func(candidates []Candidate, slots int) []*Candidate

func (f AssignerFunc) Assign(candidates []Candidate, slots int) []*Candidate {
	return f(candidates, slots)
}

// PositionalAssigner keeps no memory between frames: it takes the first
// `slots` hands and gives them to players left to right by fingertip x.
// Hands that cross each other swap players for as long as they stay crossed.
type PositionalAssigner struct{}

var _ Assigner = PositionalAssigner{}

func (PositionalAssigner) Assign(candidates []Candidate, slots int) []*Candidate {
	out := make([]*Candidate, slots)
	if len(candidates) > slots {
		candidates = candidates[:slots]
	}

	ordered := make([]*Candidate, len(candidates))
	for i := range candidates {
		ordered[i] = &candidates[i]
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Tip.X < ordered[j].Tip.X
	})

	copy(out, ordered)

	return out
}
