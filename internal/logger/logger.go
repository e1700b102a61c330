package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Target is a log sink with its own minimum level.
type Target struct {
	Name  string // "stdout", "stderr" or a file path
	Level zapcore.Level
}

// ParseTarget parses "name[:LEVEL]". Without a valid level suffix the
// whole string is the name and the level is defaultLevel.
func ParseTarget(spec string, defaultLevel zapcore.Level) Target {
	if i := strings.LastIndex(spec, ":"); i > 0 {
		if lvl, err := zapcore.ParseLevel(strings.ToLower(spec[i+1:])); err == nil {
			return Target{Name: spec[:i], Level: lvl}
		}
	}
	return Target{Name: spec, Level: defaultLevel}
}

// Initialize sets up the global logger with the given log level.
// stdout is always a target at that level; each extra target spec
// ("name[:LEVEL]") adds a sink. A target naming stdout replaces its level.
func Initialize(level string, targets ...string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	sinks := []Target{{Name: "stdout", Level: lvl}}
	for _, spec := range targets {
		t := ParseTarget(spec, zapcore.InfoLevel)
		if t.Name == "stdout" {
			sinks[0].Level = t.Level
			continue
		}
		sinks = append(sinks, t)
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	cores := make([]zapcore.Core, 0, len(sinks))
	for _, s := range sinks {
		ws, _, err := zap.Open(s.Name)
		if err != nil {
			return err
		}
		cores = append(cores, zapcore.NewCore(encoder, ws, zap.NewAtomicLevelAt(s.Level)))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return nil
}
