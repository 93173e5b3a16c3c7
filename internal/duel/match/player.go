package match

import (
	"fmt"

	"github.com/bloops-games/doodleduel/internal/duel/resource"
	"github.com/bloops-games/doodleduel/internal/duel/stroke"
)

const DefaultMaxHP = 100

type PlayerStateKind uint8

const (
	PlayerStateKindIdle PlayerStateKind = iota + 1
	PlayerStateKindReady
	PlayerStateKindDrawing
	PlayerStateKindResolving
)

func (k PlayerStateKind) String() string {
	switch k {
	case PlayerStateKindIdle:
		return "idle"
	case PlayerStateKindReady:
		return "ready"
	case PlayerStateKindDrawing:
		return "drawing"
	case PlayerStateKindResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

func (k PlayerStateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func NewPlayer(id int, color stroke.Color, maxHP int) *Player {
	if maxHP <= 0 {
		maxHP = DefaultMaxHP
	}

	return &Player{
		ID:    id,
		Name:  fmt.Sprintf(resource.TextPlayerName, id),
		Color: color,
		MaxHP: maxHP,
		HP:    maxHP,
		State: PlayerStateKindIdle,
	}
}

// Player lives for the whole match. The round clock owns State; HP is kept in
// [0, MaxHP] for the damage step that runs when a round resolves.
type Player struct {
	ID    int
	Name  string
	Color stroke.Color
	HP    int
	MaxHP int
	State PlayerStateKind
}

// HPRatio is the fill ratio of the player's HP bar.
func (p *Player) HPRatio() float64 {
	return hpRatio(p.HP, p.MaxHP)
}

// SetHP stores hp clamped into [0, MaxHP].
func (p *Player) SetHP(hp int) {
	switch {
	case hp < 0:
		p.HP = 0
	case hp > p.MaxHP:
		p.HP = p.MaxHP
	default:
		p.HP = hp
	}
}

func hpRatio(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}

	ratio := float64(hp) / float64(maxHP)
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}
