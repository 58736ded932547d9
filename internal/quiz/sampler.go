package quiz

import (
	"math/rand/v2"

	"github.com/gallegodamar/sinonimoak/internal/words"
)

// Sampler draws one entry from a non-empty pool. Draws are independent
// (sampling with replacement), so repeats across a session are expected
// whenever the vocabulary is smaller than the number of slots to fill.
type Sampler interface {
	Draw(pool []words.WordEntry) words.WordEntry
}

// SamplerFor picks the sampling strategy: failure-weighted roulette when
// historical stats are available, uniform otherwise. Both satisfy the
// same Draw contract; the orchestration in Generate does not care which.
func SamplerFor(rng *rand.Rand, stats map[string]FailureStat) Sampler {
	if len(stats) > 0 {
		return NewWeighted(rng, stats)
	}
	return NewUniform(rng)
}

type uniformSampler struct {
	rng *rand.Rand
}

// NewUniform returns a sampler that draws uniformly at random.
func NewUniform(rng *rand.Rand) Sampler {
	return &uniformSampler{rng: rng}
}

func (s *uniformSampler) Draw(pool []words.WordEntry) words.WordEntry {
	return pool[s.rng.IntN(len(pool))]
}

type weightedSampler struct {
	rng   *rand.Rand
	stats map[string]FailureStat
}

// NewWeighted returns a sampler biased toward entries the player has
// historically answered wrong. Every entry keeps a weight of at least 1,
// so nothing is ever excluded from selection.
func NewWeighted(rng *rand.Rand, stats map[string]FailureStat) Sampler {
	return &weightedSampler{rng: rng, stats: stats}
}

func (s *weightedSampler) weight(e words.WordEntry) float64 {
	stat, ok := s.stats[StatKey(e.ID, e.Level)]
	if !ok {
		return 1
	}
	w := 1 + float64(stat.Wrong)*3
	if stat.Attempts > 0 {
		w += float64(stat.Wrong) / float64(stat.Attempts) * 5
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Draw runs a cumulative-weight roulette over the pool.
func (s *weightedSampler) Draw(pool []words.WordEntry) words.WordEntry {
	total := 0.0
	for _, e := range pool {
		total += s.weight(e)
	}

	r := s.rng.Float64() * total
	for _, e := range pool {
		r -= s.weight(e)
		if r <= 0 {
			return e
		}
	}
	// Float rounding can leave r marginally positive after the loop.
	return pool[len(pool)-1]
}
