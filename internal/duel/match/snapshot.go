package match

import (
	"time"

	"github.com/bloops-games/doodleduel/internal/duel/stroke"
	"github.com/bloops-games/doodleduel/internal/duel/zone"
)

// Snapshot is the read-only state handed to renderers after a frame.
type Snapshot struct {
	MatchID   string        `json:"matchId"`
	Round     int           `json:"round"`
	Phase     Phase         `json:"phase"`
	Remaining time.Duration `json:"remaining"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Players   []PlayerView  `json:"players"`
}

type PlayerView struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Color    stroke.Color     `json:"color"`
	HP       int              `json:"hp"`
	MaxHP    int              `json:"maxHp"`
	State    PlayerStateKind  `json:"state"`
	Pen      stroke.PenState  `json:"pen"`
	Zone     zone.Zone        `json:"zone"`
	Segments []stroke.Segment `json:"segments"`
}

func (r *Session) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		MatchID: r.ID.String(),
		Width:   r.width,
		Height:  r.height,
		Players: make([]PlayerView, len(r.players)),
	}

	if r.clock != nil {
		s.Round = r.clock.Round()
		s.Phase = r.clock.Phase()
		s.Remaining = r.clock.TimeRemaining(now)
	}

	for i, p := range r.players {
		view := PlayerView{
			ID:       p.ID,
			Name:     p.Name,
			Color:    p.Color,
			HP:       p.HP,
			MaxHP:    p.MaxHP,
			State:    p.State,
			Pen:      r.pens[i].State(),
			Segments: r.pens[i].Surface().Segments(),
		}
		if i < len(r.zones) {
			view.Zone = r.zones[i]
		}
		s.Players[i] = view
	}

	return s
}
