// Package verselog wraps log/slog with the handful of conventions the
// compiler pipeline and CLI share: a single process-wide level knob the
// --verbose flag raises, and stage-timing/registry-mutation helpers so call
// sites don't repeat slog.Group boilerplate.
package verselog

import (
	"log/slog"
	"os"
	"time"
)

var level = new(slog.LevelVar)

// Logger is the package's shared handle. Tests and the CLI may swap it for
// one pointed at a different writer.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

// SetVerbose raises the level to Debug when verbose is true, Info otherwise.
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// StageTiming logs how long a pipeline stage took, at Debug level.
func StageTiming(stage string, d time.Duration) {
	Logger.Debug("stage complete", "stage", stage, "duration", d)
}

// RegistryMutation logs a registerType/registerFunction call, at Debug level.
func RegistryMutation(kind, name string) {
	Logger.Debug("registry mutation", "kind", kind, "name", name)
}
