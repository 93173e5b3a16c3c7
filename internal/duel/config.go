package duel

import (
	"time"

	"github.com/bloops-games/doodleduel/internal/duel/gesture"
	"github.com/bloops-games/doodleduel/internal/duel/match"
)

const (
	OutputHUD  = "hud"
	OutputJSON = "json"
)

type Config struct {
	Debug         bool          `envconfig:"DUEL_DEBUG" default:"false"`
	FrameWidth    int           `envconfig:"DUEL_FRAME_WIDTH" default:"640"`
	FrameHeight   int           `envconfig:"DUEL_FRAME_HEIGHT" default:"480"`
	FPS           int           `envconfig:"DUEL_FPS" default:"30"`
	Frames        int           `envconfig:"DUEL_FRAMES" default:"0"`
	QueueSize     int           `envconfig:"DUEL_QUEUE_SIZE" default:"4"`
	Countdown     time.Duration `envconfig:"DUEL_COUNTDOWN_DURATION" default:"2s"`
	Drawing       time.Duration `envconfig:"DUEL_DRAWING_DURATION" default:"5s"`
	Resolving     time.Duration `envconfig:"DUEL_RESOLVING_DURATION" default:"2s"`
	Gesture       string        `envconfig:"DUEL_GESTURE_STRATEGY" default:"spread"`
	Threshold     float64       `envconfig:"DUEL_GESTURE_THRESHOLD" default:"0.08"`
	Thickness     int           `envconfig:"DUEL_STROKE_THICKNESS" default:"4"`
	MaxHP         int           `envconfig:"DUEL_MAX_HP" default:"100"`
	ZoneCacheSize int           `envconfig:"DUEL_ZONE_CACHE_SIZE" default:"16"`
	ScriptPath    string        `envconfig:"DUEL_SCRIPT_PATH"`
	Output        string        `envconfig:"DUEL_OUTPUT" default:"hud"`
}

// MatchConfig maps the environment onto a two-player match configuration.
func (c *Config) MatchConfig() match.Config {
	mc := match.DefaultConfig()
	mc.Clock = match.ClockConfig{
		Countdown: c.Countdown,
		Drawing:   c.Drawing,
		Resolving: c.Resolving,
	}
	mc.Gesture = gesture.Config{
		Strategy:  gesture.Strategy(c.Gesture),
		Threshold: c.Threshold,
	}
	mc.Thickness = c.Thickness
	mc.MaxHP = c.MaxHP
	mc.ZoneCacheSize = c.ZoneCacheSize

	return mc
}

// FrameInterval is the pause between captures; zero means unpaced.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}
