package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bloops-games/doodleduel/internal/cache/cachelru"
	"github.com/bloops-games/doodleduel/internal/duel/gesture"
	"github.com/bloops-games/doodleduel/internal/duel/hand"
	"github.com/bloops-games/doodleduel/internal/duel/stroke"
	"github.com/bloops-games/doodleduel/internal/duel/zone"
	"github.com/bloops-games/doodleduel/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrNotStarted       = errors.New("session not started")
	ErrInvalidFrameSize = zone.ErrInvalidFrameSize
)

// Frame is everything the session needs from the outside for one video frame.
type Frame struct {
	Now    time.Time
	Width  int
	Height int
	Hands  []hand.Tracked
}

// PlayerInput records how one player's sample was judged in a frame.
type PlayerInput struct {
	PlayerID    int
	Assigned    bool
	HandIndex   int
	Point       zone.Point
	Intent      bool
	Inside      bool
	DrawAllowed bool
	Segment     *stroke.Segment
}

type FrameResult struct {
	Phase        Phase
	Round        int
	Transitioned bool
	Inputs       []PlayerInput
	Rejected     int
}

// Segments counts the segments drawn in this frame across all players.
func (f FrameResult) Segments() int {
	var n int
	for _, in := range f.Inputs {
		if in.Segment != nil {
			n++
		}
	}
	return n
}

func NewSession(config Config) (*Session, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	classifier := config.Classifier
	if classifier == nil {
		c, err := gesture.New(config.Gesture)
		if err != nil {
			return nil, fmt.Errorf("gesture classifier: %w", err)
		}
		classifier = c
	}

	assigner := config.Assigner
	if assigner == nil {
		assigner = PositionalAssigner{}
	}

	zoneCache := config.ZoneCache
	if zoneCache == nil {
		size := config.ZoneCacheSize
		if size <= 0 {
			size = DefaultZoneCacheSize
		}
		c, err := cachelru.NewLRU(size)
		if err != nil {
			return nil, fmt.Errorf("zone cache: %w", err)
		}
		zoneCache = c
	}

	players := make([]*Player, config.Players)
	pens := make([]*stroke.Accumulator, config.Players)
	for i := range players {
		players[i] = NewPlayer(i+1, config.color(i), config.MaxHP)
		pens[i] = stroke.NewAccumulator(players[i].Color, config.Thickness)
	}

	return &Session{
		ID:         uuid.New(),
		config:     config,
		players:    players,
		pens:       pens,
		classifier: classifier,
		assigner:   assigner,
		layouts:    zone.NewLayouter(config.Players, zoneCache),
		CreatedAt:  time.Now(),
	}, nil
}

// Session runs one match frame by frame. It does no locking: the embedding
// loop must call it from a single goroutine.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	config     Config
	players    []*Player
	pens       []*stroke.Accumulator
	clock      *Clock
	classifier gesture.Classifier
	assigner   Assigner
	layouts    *zone.Layouter
	zones      []zone.Zone
	width      int
	height     int
}

// Start creates the round clock and enters round 1's countdown.
func (r *Session) Start(now time.Time) error {
	clock, err := NewClock(r.config.Clock, r.players, now)
	if err != nil {
		return fmt.Errorf("new clock: %w", err)
	}

	clock.OnResolve(r.config.ResolveFn)
	r.clock = clock

	return nil
}

func (r *Session) Started() bool {
	return r.clock != nil
}

// Process runs the per-frame pipeline: advance the clock, assign hands to
// players by position, gate each sample by gesture, phase and zone, and feed
// the result to that player's pen.
func (r *Session) Process(ctx context.Context, frame Frame) (FrameResult, error) {
	logger := logging.FromContext(ctx).Named("match.Process")

	if r.clock == nil {
		return FrameResult{}, ErrNotStarted
	}

	phase, transitioned := r.clock.Update(frame.Now)
	if transitioned {
		logger.Infof("match %s: round %d entered %s", r.ID, r.clock.Round(), phase)
	}

	result := FrameResult{
		Phase:        phase,
		Round:        r.clock.Round(),
		Transitioned: transitioned,
		Inputs:       make([]PlayerInput, len(r.players)),
	}

	zones, err := r.layouts.Zones(frame.Width, frame.Height)
	if err != nil {
		// nothing is known about the hands in this frame: treat it as if
		// every hand disappeared
		r.liftAll()
		return result, fmt.Errorf("frame zones: %w", err)
	}
	r.zones, r.width, r.height = zones, frame.Width, frame.Height

	candidates := make([]Candidate, 0, len(frame.Hands))
	for i, h := range frame.Hands {
		if err := h.Validate(); err != nil {
			result.Rejected++
			logger.Debugf("match %s: reject hand %d: %v", r.ID, i, err)
			continue
		}

		x, y := h.Fingertip(frame.Width, frame.Height)
		candidates = append(candidates, Candidate{Index: i, Hand: h, Tip: zone.Point{X: x, Y: y}})
	}

	assigned := r.assigner.Assign(candidates, len(r.players))
	drawing := r.clock.Drawing()

	for i, pen := range r.pens {
		in := PlayerInput{PlayerID: r.players[i].ID, HandIndex: -1}

		var c *Candidate
		if i < len(assigned) {
			c = assigned[i]
		}

		if c == nil {
			pen.Update(zone.Point{}, false)
			result.Inputs[i] = in
			continue
		}

		in.Assigned = true
		in.HandIndex = c.Index
		in.Intent = r.classifier.Classify(c.Hand.Landmarks)
		in.Inside = zones[i].Contains(c.Tip)
		in.DrawAllowed = in.Intent && drawing && in.Inside

		in.Point = c.Tip
		if in.DrawAllowed {
			in.Point = zones[i].Clamp(c.Tip)
		}

		if seg, drew := pen.Update(in.Point, in.DrawAllowed); drew {
			in.Segment = &seg
		}

		result.Inputs[i] = in
	}

	return result, nil
}

// Clear wipes every player's drawing and lifts every pen.
func (r *Session) Clear() {
	for _, pen := range r.pens {
		pen.Reset()
	}
}

func (r *Session) Players() []*Player {
	return r.players
}

func (r *Session) Pen(playerIdx int) *stroke.Accumulator {
	return r.pens[playerIdx]
}

// Clock is nil until Start.
func (r *Session) Clock() *Clock {
	return r.clock
}

func (r *Session) liftAll() {
	for _, pen := range r.pens {
		pen.Update(zone.Point{}, false)
	}
}
