package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level.
// It implements both SolveHooks and CacheHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnSolveStart(ctx context.Context, id string, part int) {
	h.logger.Debug("solve start", "puzzle", id, "part", part)
}

func (h *LogHooks) OnSolveComplete(ctx context.Context, id string, part int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "puzzle", id, "part", part, "duration", d, "err", err)
		return
	}
	h.logger.Debug("solve done", "puzzle", id, "part", part, "duration", d)
}

func (h *LogHooks) OnCacheHit(ctx context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h *LogHooks) OnCacheMiss(ctx context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h *LogHooks) OnCacheSet(ctx context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

var (
	_ SolveHooks = (*LogHooks)(nil)
	_ CacheHooks = (*LogHooks)(nil)
)
