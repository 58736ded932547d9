package words

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Source fetches the active vocabulary for a difficulty level.
// The store package provides the SQLite-backed implementation.
type Source interface {
	ActiveByLevel(ctx context.Context, level int) ([]WordEntry, error)
}

// LevelCache serves per-level vocabulary with at-most-once fetching.
// The first Ensure for a level hits the Source; every later call for
// the same level returns the cached slice. Fetch failures are treated
// as "no data" and are not cached, so a later call may retry.
type LevelCache struct {
	source Source
	log    zerolog.Logger
	levels map[int][]WordEntry
}

// NewLevelCache creates an empty cache over the given source.
func NewLevelCache(source Source, log zerolog.Logger) *LevelCache {
	return &LevelCache{
		source: source,
		log:    log,
		levels: make(map[int][]WordEntry),
	}
}

// Ensure returns the usable vocabulary for level, fetching it on first use.
// The returned slice is shared; callers must not mutate it.
func (c *LevelCache) Ensure(ctx context.Context, level int) ([]WordEntry, error) {
	if cached, ok := c.levels[level]; ok {
		return cached, nil
	}

	entries, err := c.source.ActiveByLevel(ctx, level)
	if err != nil {
		c.log.Warn().Err(err).Int("level", level).Msg("vocabulary fetch failed")
		return nil, fmt.Errorf("fetch vocabulary for level %d: %w", level, err)
	}

	usable := FilterUsable(entries)
	c.levels[level] = usable
	return usable, nil
}

// Invalidate drops the cached vocabulary for level, forcing a refetch.
func (c *LevelCache) Invalidate(level int) {
	delete(c.levels, level)
}
