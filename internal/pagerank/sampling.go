package pagerank

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
)

const (
	DefaultDampingFactor = 0.85
	DefaultSamples       = 10000
)

// NewRand returns a generator for SampleRanks. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint: gosec // sampling, not cryptography
}

// SampleRanks estimates PageRank by following n steps of a random surfer that
// starts on a uniformly chosen page. Each page's rank is the share of steps
// that landed on it. A nil rng is replaced by a clock-seeded one.
func SampleRanks(corpus *Corpus, dampingFactor float64, n int, rng *rand.Rand) (Ranks, error) {
	if err := validate(corpus, dampingFactor); err != nil {
		return nil, err
	}

	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidSampleCount, n)
	}

	if rng == nil {
		rng = NewRand(0)
	}

	visits := make(map[string]int, corpus.Len())
	for _, page := range corpus.pages {
		visits[page] = 0
	}

	// transition tables depend only on the current page, so build each one once
	tables := make(map[string]*cumulative, corpus.Len())

	page := corpus.pages[rng.Intn(corpus.Len())]
	for i := 0; i < n; i++ {
		table, ok := tables[page]
		if !ok {
			distribution, err := TransitionModel(corpus, page, dampingFactor)
			if err != nil {
				return nil, fmt.Errorf("failed to build transition model: %w", err)
			}
			table = newCumulative(distribution)
			tables[page] = table
		}

		page = table.draw(rng)
		visits[page]++
	}

	ranks := make(Ranks, len(visits))
	for p, count := range visits {
		ranks[p] = float64(count) / float64(n)
	}

	return ranks, nil
}
