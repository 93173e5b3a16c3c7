package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bloops-games/doodleduel/internal/duel/source"
	"github.com/bloops-games/doodleduel/internal/logging"
	"github.com/bloops-games/doodleduel/internal/shutdown"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ScriptPath string `envconfig:"DUEL_SCRIPT_PATH"`
}

type report struct {
	captures int
	hands    int
	rejected int
	resized  int
}

func main() {
	path := flag.String("script", "", "path to a duel script, defaults to DUEL_SCRIPT_PATH")
	flag.Parse()

	ctx, cancel := shutdown.New()
	logger := logging.FromContext(ctx)
	defer cancel()

	config := Config{}
	if err := envconfig.Process("", &config); err != nil {
		logger.Fatalf("processing the config: %v", err)
	}
	if *path != "" {
		config.ScriptPath = *path
	}
	if config.ScriptPath == "" {
		logger.Fatal("no script given")
	}

	script, err := source.LoadScript(config.ScriptPath)
	if err != nil {
		logger.Fatalf("load script: %v", err)
	}

	r, err := check(ctx, script)
	if err != nil {
		logger.Fatalf("check script: %v", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s: %d captures, %d hands, %d malformed, %d size changes\n",
		config.ScriptPath, r.captures, r.hands, r.rejected, r.resized)
	if r.rejected > 0 {
		os.Exit(1)
	}
}

func check(ctx context.Context, script *source.Script) (report, error) {
	logger := logging.FromContext(ctx).Named("main.check")

	var (
		r                     report
		lastWidth, lastHeight int
	)
	for {
		c, err := script.Next(ctx)
		if errors.Is(err, io.EOF) {
			return r, nil
		}
		if err != nil {
			return r, err
		}

		r.captures++
		if r.captures > 1 && (c.Width != lastWidth || c.Height != lastHeight) {
			r.resized++
		}
		lastWidth, lastHeight = c.Width, c.Height

		for i, h := range c.Hands {
			r.hands++
			if err := h.Validate(); err != nil {
				r.rejected++
				logger.Warnf("capture %d hand %d: %v", r.captures, i, err)
			}
		}
	}
}
