package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bloops-games/doodleduel/internal/duel"
	"github.com/bloops-games/doodleduel/internal/duel/match"
	"github.com/bloops-games/doodleduel/internal/duel/output"
	"github.com/bloops-games/doodleduel/internal/duel/resource"
	"github.com/bloops-games/doodleduel/internal/duel/source"
	"github.com/bloops-games/doodleduel/internal/logging"
	"github.com/bloops-games/doodleduel/internal/shutdown"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/kelseyhightower/envconfig"
)

// one HUD frame per second at the default 30 fps
const hudEvery = 30

func main() {
	_, _ = fmt.Fprintf(os.Stderr, resource.GreetingCLI, resource.ProjectName, resource.ProjectVersion)

	ctx, done := shutdown.New()
	defer done()

	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load()

	config := duel.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.FromContext(ctx).Fatalf("processing the config: %v", err)
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, &config); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, config *duel.Config) error {
	logger := logging.FromContext(ctx)

	session, err := match.NewSession(config.MatchConfig())
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	var frames duel.FrameSource
	if config.ScriptPath != "" {
		script, err := source.LoadScript(config.ScriptPath)
		if err != nil {
			return fmt.Errorf("load script: %w", err)
		}
		frames = script
		logger.Infof("replaying %s", config.ScriptPath)
	} else {
		frames = source.NewRandom(config.FrameWidth, config.FrameHeight, config.Frames)
		logger.Infof("simulating %dx%d hands", config.FrameWidth, config.FrameHeight)
	}

	var sink duel.Sink
	switch config.Output {
	case duel.OutputJSON:
		sink = output.NewJSONSink(os.Stdout)
	case duel.OutputHUD:
		sink = output.NewHUDSink(os.Stdout, hudEvery)
	default:
		return fmt.Errorf("unknown output %q", config.Output)
	}

	manager := duel.NewManager(session, frames, sink, config, clockwork.NewRealClock())
	if err := manager.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
