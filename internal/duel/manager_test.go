package duel

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/bloops-games/doodleduel/internal/duel/hand"
	"github.com/bloops-games/doodleduel/internal/duel/match"
	"github.com/bloops-games/doodleduel/internal/duel/stroke"
	"github.com/jonboulle/clockwork"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *Config {
	return &Config{
		FrameWidth:    640,
		FrameHeight:   480,
		QueueSize:     4,
		Countdown:     2 * time.Second,
		Drawing:       5 * time.Second,
		Resolving:     2 * time.Second,
		Gesture:       "spread",
		Threshold:     0.08,
		Thickness:     4,
		MaxHP:         100,
		ZoneCacheSize: 16,
		Output:        OutputHUD,
	}
}

// stepSource replays captures and moves the fake clock forward by step
// before each one.
type stepSource struct {
	clock    *clockwork.FakeClock
	step     time.Duration
	captures []Capture
	err      error
}

func (s *stepSource) Next(_ context.Context) (Capture, error) {
	if len(s.captures) == 0 {
		if s.err != nil {
			return Capture{}, s.err
		}
		return Capture{}, io.EOF
	}

	s.clock.Advance(s.step)
	c := s.captures[0]
	s.captures = s.captures[1:]
	return c, nil
}

type recordSink struct {
	mtx       sync.Mutex
	snapshots []match.Snapshot
	err       error
}

func (s *recordSink) Render(_ context.Context, snapshot match.Snapshot) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.snapshots = append(s.snapshots, snapshot)
	return s.err
}

func (s *recordSink) all() []match.Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]match.Snapshot(nil), s.snapshots...)
}

func pointer(x, y float64, drawing bool) hand.Tracked {
	tip := hand.Landmark{X: (x + 0.5) / 640, Y: (y + 0.5) / 480}
	return hand.Tracked{Landmarks: hand.Synthesize(tip, drawing)}
}

func capture(hands ...hand.Tracked) Capture {
	return Capture{Width: 640, Height: 480, Hands: hands}
}

func newTestManager(t *testing.T, config *Config, source FrameSource, sink Sink, clock clockwork.Clock) *Manager {
	t.Helper()

	session, err := match.NewSession(config.MatchConfig())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return NewManager(session, source, sink, config, clock)
}

func TestManagerRunDrawsAcrossPhases(t *testing.T) {
	t.Parallel()

	fc := clockwork.NewFakeClockAt(epoch)
	source := &stepSource{
		clock: fc,
		step:  time.Second,
		captures: []Capture{
			capture(pointer(100, 100, true)),
			capture(pointer(100, 100, true)),
			capture(pointer(150, 100, true), pointer(400, 100, false)),
			{Width: 640, Height: 480, Clear: true},
			{Quit: true},
			capture(pointer(200, 100, true)),
		},
	}
	sink := &recordSink{}
	m := newTestManager(t, testConfig(), source, sink, fc)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	snapshots := sink.all()
	if len(snapshots) != 4 {
		t.Fatalf("expected 4 snapshots got %d", len(snapshots))
	}

	if snapshots[0].Phase != match.PhaseCountdown {
		t.Errorf("frame 1: expected %v got %v", match.PhaseCountdown, snapshots[0].Phase)
	}
	if snapshots[1].Phase != match.PhaseDrawing {
		t.Errorf("frame 2: expected %v got %v", match.PhaseDrawing, snapshots[1].Phase)
	}

	third := snapshots[2]
	if got := len(third.Players[0].Segments); got != 1 {
		t.Fatalf("frame 3: expected 1 segment got %d", got)
	}
	if third.Players[0].Pen != stroke.PenDown || third.Players[1].Pen != stroke.PenUp {
		t.Errorf("frame 3: unexpected pens %v %v", third.Players[0].Pen, third.Players[1].Pen)
	}
	if third.Remaining != 4*time.Second {
		t.Errorf("frame 3: expected 4s remaining got %v", third.Remaining)
	}

	if got := len(snapshots[3].Players[0].Segments); got != 0 {
		t.Errorf("expected cleared surface, got %d segments", got)
	}
	if m.Processed() != 4 || m.Dropped() != 0 {
		t.Errorf("expected 4 processed 0 dropped, got %d %d", m.Processed(), m.Dropped())
	}
}

func TestManagerDropsInvalidFrames(t *testing.T) {
	t.Parallel()

	fc := clockwork.NewFakeClockAt(epoch)
	source := &stepSource{
		clock: fc,
		step:  10 * time.Millisecond,
		captures: []Capture{
			capture(),
			{Width: 0, Height: 480},
			{Width: 640, Height: -1},
			capture(),
		},
	}
	sink := &recordSink{}
	m := newTestManager(t, testConfig(), source, sink, fc)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if m.Dropped() != 2 || m.Processed() != 2 {
		t.Errorf("expected 2 dropped 2 processed, got %d %d", m.Dropped(), m.Processed())
	}
	if got := len(sink.all()); got != 2 {
		t.Errorf("expected 2 snapshots got %d", got)
	}
}

func TestManagerSourceError(t *testing.T) {
	t.Parallel()

	errCamera := errors.New("camera unplugged")
	fc := clockwork.NewFakeClockAt(epoch)
	source := &stepSource{clock: fc, step: time.Millisecond, captures: []Capture{capture()}, err: errCamera}
	m := newTestManager(t, testConfig(), source, &recordSink{}, fc)

	if err := m.Run(context.Background()); !errors.Is(err, errCamera) {
		t.Fatalf("expected %v got %v", errCamera, err)
	}
}

func TestManagerSinkErrorDoesNotStop(t *testing.T) {
	t.Parallel()

	fc := clockwork.NewFakeClockAt(epoch)
	source := &stepSource{clock: fc, step: time.Millisecond, captures: []Capture{capture(), capture(), capture()}}
	sink := &recordSink{err: errors.New("terminal closed")}
	m := newTestManager(t, testConfig(), source, sink, fc)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := len(sink.all()); got != 3 {
		t.Errorf("expected 3 render calls got %d", got)
	}
}

func TestManagerInvalidMatchConfig(t *testing.T) {
	t.Parallel()

	config := testConfig()
	config.Drawing = 0

	session, err := match.NewSession(match.DefaultConfig())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := match.NewSession(config.MatchConfig()); !errors.Is(err, match.ErrInvalidDuration) {
		t.Fatalf("expected %v got %v", match.ErrInvalidDuration, err)
	}

	m := NewManager(session, &stepSource{}, &recordSink{}, config, nil)
	if m.clock == nil {
		t.Fatal("expected the real clock by default")
	}
}

type blockingSource struct {
	calls chan struct{}
}

func (s *blockingSource) Next(ctx context.Context) (Capture, error) {
	s.calls <- struct{}{}
	<-ctx.Done()
	return Capture{}, ctx.Err()
}

func TestManagerStopsOnCancel(t *testing.T) {
	t.Parallel()

	source := &blockingSource{calls: make(chan struct{}, 1)}
	m := newTestManager(t, testConfig(), source, &recordSink{}, clockwork.NewFakeClockAt(epoch))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx)
	}()

	<-source.calls
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean stop got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

type countSource struct {
	left int
}

func (s *countSource) Next(_ context.Context) (Capture, error) {
	if s.left == 0 {
		return Capture{}, io.EOF
	}
	s.left--
	return capture(), nil
}

func TestManagerPacedByTicker(t *testing.T) {
	t.Parallel()

	config := testConfig()
	config.FPS = 10

	fc := clockwork.NewFakeClockAt(epoch)
	sink := &recordSink{}
	m := newTestManager(t, config, &countSource{left: 3}, sink, fc)

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background())
	}()

	timeout := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got := len(sink.all()); got != 3 {
				t.Fatalf("expected 3 snapshots got %d", got)
			}
			return
		case <-timeout:
			t.Fatal("paced run did not finish")
		default:
			fc.Advance(config.FrameInterval())
			time.Sleep(time.Millisecond)
		}
	}
}

func TestConfigFrameInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fps  int
		want time.Duration
	}{
		{fps: 0, want: 0},
		{fps: -5, want: 0},
		{fps: 10, want: 100 * time.Millisecond},
		{fps: 30, want: time.Second / 30},
	}
	for _, tc := range tests {
		c := &Config{FPS: tc.fps}
		if got := c.FrameInterval(); got != tc.want {
			t.Errorf("fps %d: expected %v got %v", tc.fps, tc.want, got)
		}
	}
}
