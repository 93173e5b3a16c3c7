// Package hand holds the per-frame hand detection result the duel consumes.
// Landmark indices follow the MediaPipe hand model.
package hand

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	Wrist        = 0
	ThumbTip     = 4
	IndexTip     = 8
	MiddleTip    = 12
	RingTip      = 16
	PinkyTip     = 20
	NumLandmarks = 21
)

// FingerTips lists the five fingertip landmarks, thumb first.
var FingerTips = [...]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

var (
	ErrTooFewLandmarks = errors.New("too few landmarks")
	ErrInvalidLandmark = errors.New("invalid landmark")
)

type Handedness uint8

const (
	HandednessUnknown Handedness = iota
	HandednessLeft
	HandednessRight
)

func (h Handedness) String() string {
	switch h {
	case HandednessLeft:
		return "left"
	case HandednessRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseHandedness accepts "left" or "right" in any case; everything else is unknown.
func ParseHandedness(s string) Handedness {
	switch strings.ToLower(s) {
	case "left":
		return HandednessLeft
	case "right":
		return HandednessRight
	default:
		return HandednessUnknown
	}
}

// Landmark is a normalized image coordinate in [0, 1].
type Landmark struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func Distance(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Tracked is one detected hand in one frame. It carries no identity across frames.
type Tracked struct {
	Landmarks  []Landmark
	Handedness Handedness
}

func (t Tracked) Validate() error {
	if len(t.Landmarks) < NumLandmarks {
		return fmt.Errorf("%w: got %d, need %d", ErrTooFewLandmarks, len(t.Landmarks), NumLandmarks)
	}

	for i, lm := range t.Landmarks {
		if math.IsNaN(lm.X) || math.IsNaN(lm.Y) || math.IsInf(lm.X, 0) || math.IsInf(lm.Y, 0) {
			return fmt.Errorf("%w: landmark %d is not finite", ErrInvalidLandmark, i)
		}
	}

	return nil
}

// Fingertip converts the index fingertip into pixel coordinates of a width x height frame.
// The result is not clamped to the frame. Validate must have succeeded.
func (t Tracked) Fingertip(width, height int) (x, y int) {
	tip := t.Landmarks[IndexTip]
	return int(tip.X * float64(width)), int(tip.Y * float64(height))
}
