package match

import (
	"fmt"
	"strings"

	"github.com/bloops-games/doodleduel/internal/duel/resource"
	"github.com/bloops-games/doodleduel/internal/strpool"
)

// SecondsLabel is the whole seconds shown on the HUD countdown; it never
// reads 0 while a phase is running.
func SecondsLabel(s Snapshot) int {
	return int(s.Remaining.Seconds()) + 1
}

// RenderHUD formats the heads-up display text for one snapshot: round and
// phase header, the seconds left, one HP line per player and the resolving
// banner.
func RenderHUD(s Snapshot) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	_, _ = fmt.Fprintf(buf, resource.TextRoundHeader, s.Round, strings.ToUpper(s.Phase.String()), phaseIcon(s.Phase))
	buf.WriteString("\n")
	_, _ = fmt.Fprintf(buf, resource.TextSecondsLeft, SecondsLabel(s))
	buf.WriteString("\n")

	for _, p := range s.Players {
		_, _ = fmt.Fprintf(buf, resource.TextPlayerHP, p.Name, p.HP)
		buf.WriteString(" [")
		buf.WriteString(renderHPBar(p))
		buf.WriteString("] ")
		_, _ = fmt.Fprintf(buf, resource.TextPlayerStrokes, len(p.Segments), p.Pen)
		buf.WriteString("\n")
	}

	if s.Phase == PhaseResolving {
		buf.WriteString(resource.TextResolvingBanner)
		buf.WriteString("\n")
	}

	return buf.String()
}

func renderHPBar(p PlayerView) string {
	full := int(hpRatio(p.HP, p.MaxHP) * resource.HPBarCells)
	return strings.Repeat(resource.HPBarFull, full) + strings.Repeat(resource.HPBarEmpty, resource.HPBarCells-full)
}

func phaseIcon(p Phase) string {
	switch p {
	case PhaseCountdown:
		return resource.IconCountdown
	case PhaseDrawing:
		return resource.IconDrawing
	case PhaseResolving:
		return resource.IconResolving
	default:
		return ""
	}
}
