package pagerank

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
)

// DefaultTolerance is the largest per-page change still treated as converged.
const DefaultTolerance = 0.001

type IterateOption func(cfg *iterateConfig)

type iterateConfig struct {
	tolerance     float64
	maxIterations int
}

func WithTolerance(tolerance float64) IterateOption {
	return func(cfg *iterateConfig) {
		if tolerance > 0 {
			cfg.tolerance = tolerance
		}
	}
}

// WithMaxIterations caps the number of rounds; zero leaves it unbounded.
func WithMaxIterations(maxIterations int) IterateOption {
	return func(cfg *iterateConfig) {
		if maxIterations >= 0 {
			cfg.maxIterations = maxIterations
		}
	}
}

// IterateRanks computes PageRank as the fixed point of
//
//	PR(p) = (1-d)/N + d * Σ PR(i)/L(i)
//
// over every page i linking to p, starting from a uniform vector. Every round
// reads only the previous round's values. It stops once no page changes by
// the tolerance or more.
func IterateRanks(corpus *Corpus, dampingFactor float64, opts ...IterateOption) (Ranks, error) {
	cfg := iterateConfig{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(corpus, dampingFactor); err != nil {
		return nil, err
	}

	pageCount := float64(corpus.Len())
	inbound := corpus.Inbound()
	dangling := corpus.dangling()

	ranks := make(Ranks, corpus.Len())
	for _, page := range corpus.pages {
		ranks[page] = 1 / pageCount
	}

	for iteration := 1; ; iteration++ {
		// dangling pages spread their rank over the whole corpus
		danglingShare := 0.0
		for _, page := range dangling {
			danglingShare += ranks[page] / pageCount
		}

		next := make(Ranks, len(ranks))
		converged := true
		for _, page := range corpus.pages {
			linked := danglingShare
			for _, linker := range inbound[page] {
				linked += ranks[linker] / float64(len(corpus.links[linker]))
			}

			next[page] = (1-dampingFactor)/pageCount + dampingFactor*linked
			if math.Abs(next[page]-ranks[page]) >= cfg.tolerance {
				converged = false
			}
		}
		ranks = next

		if converged {
			return ranks, nil
		}

		if cfg.maxIterations > 0 && iteration >= cfg.maxIterations {
			return nil, fmt.Errorf("%w after %d iterations", apperror.ErrNotConverged, iteration)
		}
	}
}
