// Package gesture turns one hand's landmarks into a draw / don't-draw signal.
//
// Two heuristics are available and they read "fingers close together" in
// opposite ways:
//
//   - spread: the average fingertip-to-wrist distance is small for a closed
//     fist. A fist stops drawing, any open or pointing hand draws.
//   - pinch: the index and middle fingertips touching means drawing. Holding
//     them apart stops drawing, regardless of the other fingers.
//
// Pick one per match through Config.
package gesture

import (
	"errors"
	"fmt"

	"github.com/bloops-games/doodleduel/internal/duel/hand"
)

const DefaultThreshold = 0.08

var (
	ErrUnknownStrategy  = errors.New("unknown gesture strategy")
	ErrInvalidThreshold = errors.New("invalid gesture threshold")
)

// Classifier reports whether a hand intends to draw. Implementations are pure
// and return false for landmark sets that are too short to inspect.
type Classifier interface {
	Classify(landmarks []hand.Landmark) bool
}

type ClassifierFunc func(landmarks []hand.Landmark) bool

func (f ClassifierFunc) Classify(landmarks []hand.Landmark) bool {
	return f(landmarks)
}

type Strategy string

const (
	StrategySpread Strategy = "spread"
	StrategyPinch  Strategy = "pinch"
)

type Config struct {
	Strategy  Strategy
	Threshold float64
}

func DefaultConfig() Config {
	return Config{Strategy: StrategySpread, Threshold: DefaultThreshold}
}

func New(config Config) (Classifier, error) {
	if config.Threshold <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, config.Threshold)
	}

	switch config.Strategy {
	case StrategySpread, "":
		return Spread{Threshold: config.Threshold}, nil
	case StrategyPinch:
		return Pinch{Threshold: config.Threshold}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, config.Strategy)
	}
}

// Spread draws unless the hand is a closed fist, i.e. unless the mean
// distance of the five fingertips to the wrist is below Threshold.
type Spread struct {
	Threshold float64
}

var _ Classifier = Spread{}

func (s Spread) Classify(landmarks []hand.Landmark) bool {
	if len(landmarks) < hand.NumLandmarks {
		return false
	}

	wrist := landmarks[hand.Wrist]
	var sum float64
	for _, tip := range hand.FingerTips {
		sum += hand.Distance(landmarks[tip], wrist)
	}

	return sum/float64(len(hand.FingerTips)) >= s.Threshold
}

// Pinch draws while the index and middle fingertips are closer than Threshold.
type Pinch struct {
	Threshold float64
}

var _ Classifier = Pinch{}

func (p Pinch) Classify(landmarks []hand.Landmark) bool {
	if len(landmarks) < hand.NumLandmarks {
		return false
	}

	return hand.Distance(landmarks[hand.IndexTip], landmarks[hand.MiddleTip]) < p.Threshold
}
