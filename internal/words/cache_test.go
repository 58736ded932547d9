package words

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	entries map[int][]WordEntry
	err     error
	calls   map[int]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		entries: make(map[int][]WordEntry),
		calls:   make(map[int]int),
	}
}

func (f *fakeSource) ActiveByLevel(_ context.Context, level int) ([]WordEntry, error) {
	f.calls[level]++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[level], nil
}

func TestLevelCacheFetchesOnce(t *testing.T) {
	src := newFakeSource()
	src.entries[1] = []WordEntry{
		{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1},
	}
	cache := NewLevelCache(src, zerolog.Nop())

	first, err := cache.Ensure(context.Background(), 1)
	require.NoError(t, err)
	second, err := cache.Ensure(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls[1], "second Ensure must not refetch")
}

func TestLevelCacheSeparateLevels(t *testing.T) {
	src := newFakeSource()
	src.entries[1] = []WordEntry{{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor"}}}
	src.entries[2] = []WordEntry{{ID: "2", Headword: "handi", Synonyms: []string{"nagusi"}}}
	cache := NewLevelCache(src, zerolog.Nop())

	one, err := cache.Ensure(context.Background(), 1)
	require.NoError(t, err)
	two, err := cache.Ensure(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "azkar", one[0].Headword)
	assert.Equal(t, "handi", two[0].Headword)
}

func TestLevelCacheFiltersUnusable(t *testing.T) {
	src := newFakeSource()
	src.entries[1] = []WordEntry{
		{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor"}},
		{ID: "2", Headword: "hutsik", Synonyms: nil}, // no synonyms, excluded
	}
	cache := NewLevelCache(src, zerolog.Nop())

	got, err := cache.Ensure(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "azkar", got[0].Headword)
}

func TestLevelCacheErrorNotCached(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("db closed")
	cache := NewLevelCache(src, zerolog.Nop())

	_, err := cache.Ensure(context.Background(), 1)
	require.Error(t, err)

	// Recovery: the source comes back and the cache retries.
	src.err = nil
	src.entries[1] = []WordEntry{{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor"}}}
	got, err := cache.Ensure(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, src.calls[1])
}

func TestLevelCacheInvalidate(t *testing.T) {
	src := newFakeSource()
	src.entries[1] = []WordEntry{{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor"}}}
	cache := NewLevelCache(src, zerolog.Nop())

	_, err := cache.Ensure(context.Background(), 1)
	require.NoError(t, err)
	cache.Invalidate(1)
	_, err = cache.Ensure(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls[1])
}
