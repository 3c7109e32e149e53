package colorcode

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// silent drops every record; Enabled reports false so disabled calls
// never format their attributes.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(silent{}))
}

// SetLogger sets the logger every Pipeline reports to. Runs log nothing
// until it is called; nil silences them again. It may be called while a
// pipeline is running.
//
// Records carry a space attribute, and level records add level and size:
//   - [slog.LevelDebug]: one "stage finished" per pixelate, channel,
//     center and composite step, with its elapsed time
//   - [slog.LevelInfo]: "level finished" and "run finished"
//   - [slog.LevelWarn]: "levels skipped" and "all levels skipped" when
//     blocks would be smaller than MinBlockSize
//
// Example:
//
//	colorcode.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}

// runLogger returns the logger for one run in space s.
func runLogger(s Space) *slog.Logger {
	return Logger().With("space", s.String())
}

// levelLogger returns the logger for one level of a run in space s.
func levelLogger(s Space, lv Level) *slog.Logger {
	return runLogger(s).With("level", lv.Index, "size", lv.Size)
}

func stageDone(log *slog.Logger, stage string, start time.Time) {
	log.Debug("stage finished", "stage", stage, "elapsed", time.Since(start))
}
