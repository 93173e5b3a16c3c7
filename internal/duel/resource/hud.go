package resource

import "github.com/enescakir/emoji"

var (
	ProjectName    = "doodleduel"
	ProjectVersion = "v0.1.0"
	GreetingCLI    = emoji.Pen.String() + " %s %s\n" +
		"Two players, one camera, one split line. Draw in your half while the clock says DRAWING.\n\n"
)

var (
	TextRoundHeader     = emoji.GameDie.String() + " Round %d - %s %s"
	TextSecondsLeft     = emoji.Stopwatch.String() + " %ds"
	TextPlayerHP        = emoji.FlexedBiceps.String() + " %s HP: %d"
	TextPlayerStrokes   = emoji.Pen.String() + " %d segments, pen %s"
	TextResolvingBanner = emoji.Gear.String() + " RESOLVING..."
	TextPlayerName      = "P%d"
)

var (
	IconCountdown = emoji.Stopwatch.String()
	IconDrawing   = emoji.Pen.String()
	IconResolving = emoji.Gear.String()
)

const (
	HPBarCells = 10
	HPBarFull  = "#"
	HPBarEmpty = "."
)
