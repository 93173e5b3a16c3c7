package zone

import (
	"fmt"

	"github.com/bloops-games/doodleduel/internal/cache"
)

type layoutKey struct {
	width, height, n int
}

// Layouter hands out per-player zones for a frame size. Frame size is
// supplied every frame, so splits are memoised and only recomputed when the
// resolution changes.
type Layouter struct {
	players int
	cache   cache.Cache
}

func NewLayouter(players int, c cache.Cache) *Layouter {
	return &Layouter{players: players, cache: c}
}

func (l *Layouter) Zones(width, height int) ([]Zone, error) {
	key := layoutKey{width: width, height: height, n: l.players}
	if v, ok := l.cache.Get(key); ok {
		if zones, ok := v.([]Zone); ok {
			return zones, nil
		}
	}

	zones, err := Split(width, height, l.players)
	if err != nil {
		return nil, fmt.Errorf("split frame: %w", err)
	}

	l.cache.Add(key, zones)

	return zones, nil
}
