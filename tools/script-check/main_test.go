package main

import (
	"context"
	"testing"

	"github.com/bloops-games/doodleduel/internal/duel/source"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	script, err := source.ParseScript([]byte(`
width: 640
height: 480
frames:
  - hands:
      - {x: 0.2, y: 0.5, draw: true}
      - landmarks: [{x: 0.5, y: 0.5}]
    repeat: 2
  - width: 320
    height: 240
  - hands: []
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	r, err := check(context.Background(), script)
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	want := report{captures: 4, hands: 4, rejected: 2, resized: 2}
	if r != want {
		t.Errorf("expected %#v got %#v", want, r)
	}
}
