package duel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bloops-games/doodleduel/internal/duel/hand"
	"github.com/bloops-games/doodleduel/internal/duel/match"
	"github.com/bloops-games/doodleduel/internal/logging"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Capture is one camera frame after hand detection. At is stamped by the
// manager when the capture is pulled unless the source already set it.
type Capture struct {
	At     time.Time
	Width  int
	Height int
	Hands  []hand.Tracked
	Clear  bool
	Quit   bool
}

// FrameSource yields captures until it returns io.EOF.
type FrameSource interface {
	Next(ctx context.Context) (Capture, error)
}

// Sink receives a snapshot after every processed frame.
type Sink interface {
	Render(ctx context.Context, snapshot match.Snapshot) error
}

type SinkFunc func(ctx context.Context, snapshot match.Snapshot) error

func (f SinkFunc) Render(ctx context.Context, snapshot match.Snapshot) error {
	return f(ctx, snapshot)
}

func NewManager(session *match.Session, source FrameSource, sink Sink, config *Config, clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Manager{
		session: session,
		source:  source,
		sink:    sink,
		config:  config,
		clock:   clock,
	}
}

// Manager pumps captures from a source into a single session and hands every
// resulting snapshot to a sink. Only the consumer goroutine touches the
// session.
type Manager struct {
	session *match.Session
	source  FrameSource
	sink    Sink
	config  *Config
	clock   clockwork.Clock

	processed int
	dropped   int
}

// Run blocks until the source is exhausted, a quit capture arrives or ctx is
// cancelled. Neither of those is an error.
func (m *Manager) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("manager.Run")

	if err := m.session.Start(m.clock.Now()); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	logger.Infof("match %s started, %d fps", m.session.ID, m.config.FPS)

	queueSize := m.config.QueueSize
	if queueSize < 0 {
		queueSize = 0
	}
	captures := make(chan Capture, queueSize)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(captures)
		return m.pump(gctx, captures)
	})
	g.Go(func() error {
		return m.consume(gctx, captures)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Infof("match %s stopped: %d frames processed, %d dropped", m.session.ID, m.processed, m.dropped)

	return nil
}

func (m *Manager) pump(ctx context.Context, captures chan<- Capture) error {
	logger := logging.FromContext(ctx).Named("manager.pump")

	var tick <-chan time.Time
	if interval := m.config.FrameInterval(); interval > 0 {
		ticker := m.clock.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.Chan()
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		capture, err := m.source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("source exhausted")
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("next capture: %w", err)
		}

		if capture.Quit {
			logger.Debug("quit requested")
			return nil
		}

		if capture.At.IsZero() {
			capture.At = m.clock.Now()
		}

		select {
		case <-ctx.Done():
			return nil
		case captures <- capture:
		}
	}
}

func (m *Manager) consume(ctx context.Context, captures <-chan Capture) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case capture, ok := <-captures:
			if !ok {
				return nil
			}
			if err := m.handle(ctx, capture); err != nil {
				return err
			}
		}
	}
}

func (m *Manager) handle(ctx context.Context, capture Capture) error {
	logger := logging.FromContext(ctx).Named("manager.handle")

	if capture.Clear {
		m.session.Clear()
		logger.Debugf("match %s: drawings cleared", m.session.ID)
	}

	result, err := m.session.Process(ctx, match.Frame{
		Now:    capture.At,
		Width:  capture.Width,
		Height: capture.Height,
		Hands:  capture.Hands,
	})
	if err != nil {
		if errors.Is(err, match.ErrInvalidFrameSize) {
			m.dropped++
			logger.Warnf("match %s: drop frame: %v", m.session.ID, err)
			return nil
		}
		return fmt.Errorf("process frame: %w", err)
	}
	m.processed++

	if result.Rejected > 0 {
		logger.Debugf("match %s: %d malformed hands in frame", m.session.ID, result.Rejected)
	}

	if err := m.sink.Render(ctx, m.session.Snapshot(capture.At)); err != nil {
		logger.Errorf("match %s: render: %v", m.session.ID, err)
	}

	return nil
}

// Processed is the number of frames the session accepted.
func (m *Manager) Processed() int {
	return m.processed
}

// Dropped is the number of frames discarded for an invalid size.
func (m *Manager) Dropped() int {
	return m.dropped
}
