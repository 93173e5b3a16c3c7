package match

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultCountdownDuration = 2 * time.Second
	DefaultDrawingDuration   = 5 * time.Second
	DefaultResolvingDuration = 2 * time.Second
)

var ErrInvalidDuration = errors.New("invalid phase duration")

type Phase uint8

const (
	PhaseCountdown Phase = iota + 1
	PhaseDrawing
	PhaseResolving
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseDrawing:
		return "drawing"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type ClockConfig struct {
	Countdown time.Duration
	Drawing   time.Duration
	Resolving time.Duration
}

func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		Countdown: DefaultCountdownDuration,
		Drawing:   DefaultDrawingDuration,
		Resolving: DefaultResolvingDuration,
	}
}

func (c ClockConfig) validate() error {
	if c.Countdown <= 0 || c.Drawing <= 0 || c.Resolving <= 0 {
		return fmt.Errorf("%w: countdown=%s drawing=%s resolving=%s",
			ErrInvalidDuration, c.Countdown, c.Drawing, c.Resolving)
	}
	return nil
}

// ResolveFunc runs when a round's drawing phase ends, before the resolving
// countdown starts. It is where damage is applied to players.
type ResolveFunc func(round int, players []*Player)

// NewClock builds the round clock for players and starts round 1 at now.
func NewClock(config ClockConfig, players []*Player, now time.Time) (*Clock, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	c := &Clock{
		config:  config,
		players: players,
		round:   1,
	}
	c.StartRound(now)

	return c, nil
}

// Clock is the match-wide Countdown -> Drawing -> Resolving cycle. Only
// StartRound and Update change the phase. It is not safe for concurrent use.
type Clock struct {
	config    ClockConfig
	players   []*Player
	phase     Phase
	round     int
	deadline  time.Time
	onResolve ResolveFunc
}

func (c *Clock) OnResolve(fn ResolveFunc) {
	c.onResolve = fn
}

// StartRound enters the countdown. The round index is left untouched.
func (c *Clock) StartRound(now time.Time) {
	c.phase = PhaseCountdown
	c.deadline = now.Add(c.config.Countdown)
	c.setPlayers(PlayerStateKindReady)
}

// Update advances at most one phase once the deadline has passed. Late calls
// do not catch up on skipped phases; the new deadline is measured from now.
func (c *Clock) Update(now time.Time) (Phase, bool) {
	if now.Before(c.deadline) {
		return c.phase, false
	}

	switch c.phase {
	case PhaseCountdown:
		c.phase = PhaseDrawing
		c.deadline = now.Add(c.config.Drawing)
		c.setPlayers(PlayerStateKindDrawing)
	case PhaseDrawing:
		c.phase = PhaseResolving
		c.deadline = now.Add(c.config.Resolving)
		c.setPlayers(PlayerStateKindResolving)
		if c.onResolve != nil {
			c.onResolve(c.round, c.players)
		}
	case PhaseResolving:
		c.round++
		c.StartRound(now)
	}

	return c.phase, true
}

func (c *Clock) TimeRemaining(now time.Time) time.Duration {
	if d := c.deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

func (c *Clock) Phase() Phase {
	return c.phase
}

func (c *Clock) Round() int {
	return c.round
}

func (c *Clock) Deadline() time.Time {
	return c.deadline
}

func (c *Clock) Drawing() bool {
	return c.phase == PhaseDrawing
}

func (c *Clock) setPlayers(state PlayerStateKind) {
	for _, p := range c.players {
		p.State = state
	}
}
