package match

import (
	"errors"
	"fmt"

	"github.com/bloops-games/doodleduel/internal/cache"
	"github.com/bloops-games/doodleduel/internal/duel/gesture"
	"github.com/bloops-games/doodleduel/internal/duel/stroke"
)

const (
	DefaultPlayers       = 2
	DefaultZoneCacheSize = 16
)

var ErrInvalidPlayers = errors.New("invalid players number")

var DefaultColors = []stroke.Color{
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
}

type Config struct {
	Players       int
	Clock         ClockConfig
	Gesture       gesture.Config
	Thickness     int
	MaxHP         int
	Colors        []stroke.Color
	ZoneCacheSize int

	// Optional collaborators; zero values fall back to the defaults above.
	Assigner   Assigner           `json:"-"`
	Classifier gesture.Classifier `json:"-"`
	ZoneCache  cache.Cache        `json:"-"`
	ResolveFn  ResolveFunc        `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		Players:       DefaultPlayers,
		Clock:         DefaultClockConfig(),
		Gesture:       gesture.DefaultConfig(),
		Thickness:     stroke.DefaultThickness,
		MaxHP:         DefaultMaxHP,
		Colors:        DefaultColors,
		ZoneCacheSize: DefaultZoneCacheSize,
	}
}

func (c Config) validate() error {
	if c.Players <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayers, c.Players)
	}
	return c.Clock.validate()
}

func (c Config) color(i int) stroke.Color {
	if len(c.Colors) == 0 {
		return DefaultColors[i%len(DefaultColors)]
	}
	return c.Colors[i%len(c.Colors)]
}
