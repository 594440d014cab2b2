package spindle

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// tickStats holds per-tick timings. Only populated when Kernel.debug is true.
type tickStats struct {
	inputTime  time.Duration
	updateTime time.Duration
	renderTime time.Duration
	depth      int
}

// debugMaxStackDepth is the stack depth above which Push logs a warning.
const debugMaxStackDepth = 16

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newDebugLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("component", "spindle")
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick timing
// stats, empty-stack pops and deep stacks are logged to stderr.
func (k *Kernel) SetDebugMode(enabled bool) {
	k.debug = enabled
	if enabled {
		k.logger = newDebugLogger()
	} else {
		k.logger = discardLogger
	}
}

// SetLogger replaces the debug logger. A nil logger discards output.
func (k *Kernel) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	k.logger = l
}

func (k *Kernel) debugLog(stats tickStats) {
	if !k.debug {
		return
	}
	k.logger.Debug("tick",
		"input", stats.inputTime,
		"update", stats.updateTime,
		"render", stats.renderTime,
		"total", stats.inputTime+stats.updateTime+stats.renderTime,
		"depth", stats.depth)
}

func (k *Kernel) debugCheckDepth() {
	if !k.debug || len(k.stack) <= debugMaxStackDepth {
		return
	}
	k.logger.Warn("scene stack is deep", "depth", len(k.stack), "threshold", debugMaxStackDepth)
}
