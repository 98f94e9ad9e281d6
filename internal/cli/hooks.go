package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwalther/importgraph/pkg/observability"
)

// logTraceHooks bridges tracer events onto the CLI logger at debug level.
type logTraceHooks struct {
	observability.NoopTraceHooks
	logger *log.Logger
}

func (h logTraceHooks) OnEdge(ctx context.Context, from, to string) {
	h.logger.Debugf("edge %s -> %s", from, to)
}

// logLoaderHooks reports load timings and module cache hits.
type logLoaderHooks struct {
	observability.NoopLoaderHooks
	logger *log.Logger
}

func (h logLoaderHooks) OnLoadComplete(ctx context.Context, name string, importCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("load %s failed after %s: %v", name, duration.Round(time.Microsecond), err)
		return
	}
	h.logger.Debugf("loaded %s: %d imports (%s)", name, importCount, duration.Round(time.Microsecond))
}

func (h logLoaderHooks) OnCacheHit(ctx context.Context, name string) {
	h.logger.Debugf("cache hit: %s", name)
}

// logCacheHooks reports artifact cache activity.
type logCacheHooks struct {
	observability.NoopCacheHooks
	logger *log.Logger
}

func (h logCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.logger.Debugf("artifact cache hit (%s)", keyType)
}

func (h logCacheHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.logger.Debugf("artifact cache miss (%s)", keyType)
}

func (h logCacheHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.logger.Debugf("artifact cached (%s, %d bytes)", keyType, size)
}

// registerLogHooks installs debug-level observability hooks backed by logger.
// Called once per invocation before any command logic runs.
func registerLogHooks(logger *log.Logger) {
	observability.SetTraceHooks(logTraceHooks{logger: logger})
	observability.SetLoaderHooks(logLoaderHooks{logger: logger})
	observability.SetCacheHooks(logCacheHooks{logger: logger})
}
