package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/superperm/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed returns the time since the tracker was created.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start)
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Solved n=4 (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed().Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability hooks
// =============================================================================

// slowGoal is the search time above which a finished goal is logged at info
// level instead of debug.
const slowGoal = 10 * time.Second

// logHooks forwards search and cache events to the logger.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnGoalStart(_ context.Context, goal, openLen int) {
	h.logger.Debug("searching", "goal", goal, "open", openLen)
}

func (h logHooks) OnGoalComplete(_ context.Context, goal int, s observability.GoalStats) {
	kv := []any{
		"goal", goal,
		"distance", s.Distance,
		"expanded", s.Expanded,
		"open", s.Open,
		"closed", s.Closed,
		"took", s.Duration.Round(time.Millisecond),
	}
	switch {
	case s.Err != nil:
		h.logger.Warn("goal interrupted", append(kv, "err", s.Err)...)
	case !s.Found:
		h.logger.Warn("goal unreachable", kv...)
	case s.Duration >= slowGoal:
		h.logger.Info("slow goal", kv...)
	default:
		h.logger.Debug("goal solved", kv...)
	}
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// registerHooks routes observability events to logger.
func registerHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetSearchHooks(h)
	observability.SetCacheHooks(h)
}
