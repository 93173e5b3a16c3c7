// Package output renders match snapshots for a terminal or a downstream
// consumer.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/bloops-games/doodleduel/internal/bytespool"
	"github.com/bloops-games/doodleduel/internal/duel/match"
)

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

// JSONSink writes one JSON document per snapshot, newline separated.
type JSONSink struct {
	mtx sync.Mutex
	w   io.Writer
}

func (s *JSONSink) Render(_ context.Context, snapshot match.Snapshot) error {
	buf := bytespool.Get()
	defer bytespool.Put(buf)

	if err := json.NewEncoder(buf).Encode(snapshot); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	if _, err := s.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

func NewHUDSink(w io.Writer, every int) *HUDSink {
	if every <= 0 {
		every = 1
	}
	return &HUDSink{w: w, every: every}
}

// HUDSink prints the HUD text for every n-th snapshot and for every snapshot
// that shows a new phase.
type HUDSink struct {
	mtx       sync.Mutex
	w         io.Writer
	every     int
	seen      int
	lastPhase match.Phase
	lastRound int
}

func (s *HUDSink) Render(_ context.Context, snapshot match.Snapshot) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	changed := snapshot.Phase != s.lastPhase || snapshot.Round != s.lastRound
	s.lastPhase, s.lastRound = snapshot.Phase, snapshot.Round
	s.seen++

	if !changed && s.seen%s.every != 0 {
		return nil
	}

	if _, err := io.WriteString(s.w, match.RenderHUD(snapshot)+"\n"); err != nil {
		return fmt.Errorf("write hud: %w", err)
	}

	return nil
}
