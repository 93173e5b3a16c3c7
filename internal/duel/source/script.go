package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bloops-games/doodleduel/internal/duel"
	"github.com/bloops-games/doodleduel/internal/duel/hand"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no frames")

// ScriptHand places a synthetic hand with its index fingertip at (X, Y) in
// normalized coordinates. Raw landmarks, when given, are used verbatim.
type ScriptHand struct {
	X          float64         `yaml:"x"`
	Y          float64         `yaml:"y"`
	Draw       bool            `yaml:"draw"`
	Handedness string          `yaml:"handedness"`
	Landmarks  []hand.Landmark `yaml:"landmarks"`
}

func (h ScriptHand) tracked() hand.Tracked {
	t := hand.Tracked{Handedness: hand.ParseHandedness(h.Handedness)}
	if h.Landmarks != nil {
		t.Landmarks = h.Landmarks
		return t
	}
	t.Landmarks = hand.Synthesize(hand.Landmark{X: h.X, Y: h.Y}, h.Draw)
	return t
}

// ScriptFrame is one scripted capture, played Repeat times. Width and Height
// override the script's frame size for this entry.
type ScriptFrame struct {
	Hands  []ScriptHand `yaml:"hands"`
	Clear  bool         `yaml:"clear"`
	Quit   bool         `yaml:"quit"`
	Repeat int          `yaml:"repeat"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
}

type Script struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Frames []ScriptFrame `yaml:"frames"`

	pos    int
	played int
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}

	return s, nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal script: %w", err)
	}
	if len(s.Frames) == 0 {
		return nil, ErrEmptyScript
	}

	return &s, nil
}

// Next plays the script once and then returns io.EOF.
func (s *Script) Next(ctx context.Context) (duel.Capture, error) {
	if err := ctx.Err(); err != nil {
		return duel.Capture{}, err
	}
	if s.pos >= len(s.Frames) {
		return duel.Capture{}, io.EOF
	}

	f := s.Frames[s.pos]
	s.played++
	if s.played >= f.Repeat {
		s.pos++
		s.played = 0
	}

	c := duel.Capture{
		Width:  s.Width,
		Height: s.Height,
		Clear:  f.Clear,
		Quit:   f.Quit,
		Hands:  make([]hand.Tracked, len(f.Hands)),
	}
	if f.Width != 0 {
		c.Width = f.Width
	}
	if f.Height != 0 {
		c.Height = f.Height
	}
	for i, h := range f.Hands {
		c.Hands[i] = h.tracked()
	}

	return c, nil
}
