// Package source provides frame sources for a duel: a random walk of two
// synthetic hands and a scripted replay loaded from YAML.
package source

import (
	"context"
	"io"

	"github.com/bloops-games/doodleduel/internal/duel"
	"github.com/bloops-games/doodleduel/internal/duel/hand"
	"github.com/valyala/fastrand"
)

const (
	walkStep   = 12
	walkMargin = 24

	// one in N frames
	toggleChance  = 25
	reverseChance = 4
	loseChance    = 40
)

// walker is one synthetic hand wandering around its half of the frame,
// slightly overshooting into the neighbour's zone now and then.
type walker struct {
	x, y       int
	minX, maxX int
	drawing    bool
	handedness hand.Handedness
}

func (w *walker) step(height int) {
	w.x = clampInt(w.x+jitter(walkStep), w.minX, w.maxX)
	w.y = clampInt(w.y+jitter(walkStep), 0, height-1)
	if fastrand.Uint32n(toggleChance) == 0 {
		w.drawing = !w.drawing
	}
}

func NewRandom(width, height, frames int) *Random {
	half := width / 2
	return &Random{
		width:  width,
		height: height,
		frames: frames,
		walkers: []*walker{
			{x: half / 2, y: height / 2, minX: 0, maxX: half + walkMargin, drawing: true, handedness: hand.HandednessRight},
			{x: half + half/2, y: height / 2, minX: half - walkMargin, maxX: width - 1, drawing: true, handedness: hand.HandednessLeft},
		},
	}
}

// Random emits frames of two wandering hands. Hands come in detector order,
// which is sometimes reversed, and a hand occasionally goes missing for a
// frame. A zero frame count never ends.
type Random struct {
	width, height int
	frames        int
	produced      int
	walkers       []*walker
}

func (r *Random) Next(ctx context.Context) (duel.Capture, error) {
	if err := ctx.Err(); err != nil {
		return duel.Capture{}, err
	}
	if r.frames > 0 && r.produced >= r.frames {
		return duel.Capture{}, io.EOF
	}
	r.produced++

	hands := make([]hand.Tracked, 0, len(r.walkers))
	for _, w := range r.walkers {
		w.step(r.height)
		if fastrand.Uint32n(loseChance) == 0 {
			continue
		}

		tip := hand.Landmark{
			X: (float64(w.x) + 0.5) / float64(r.width),
			Y: (float64(w.y) + 0.5) / float64(r.height),
		}
		hands = append(hands, hand.Tracked{
			Landmarks:  hand.Synthesize(tip, w.drawing),
			Handedness: w.handedness,
		})
	}

	if fastrand.Uint32n(reverseChance) == 0 {
		for i, j := 0, len(hands)-1; i < j; i, j = i+1, j-1 {
			hands[i], hands[j] = hands[j], hands[i]
		}
	}

	return duel.Capture{Width: r.width, Height: r.height, Hands: hands}, nil
}

func jitter(n int) int {
	return int(fastrand.Uint32n(uint32(2*n+1))) - n
}

func clampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
