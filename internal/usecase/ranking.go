package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/config"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/pagerank"
)

type RankingUseCase interface {
	Rank(ctx context.Context, dir string) (*RankReport, error)
}

type corpusCrawler interface {
	Crawl(ctx context.Context, dir string) (*pagerank.Corpus, error)
}

// RankReport holds both estimates for one corpus.
type RankReport struct {
	Samples  int
	Sampled  pagerank.Ranks
	Iterated pagerank.Ranks
}

type rankingUseCase struct {
	logger   *slog.Logger
	crawler  corpusCrawler
	settings config.PageRank
	rng      *rand.Rand
}

func NewRankingUseCase(logger *slog.Logger, crawler corpusCrawler, settings config.PageRank) RankingUseCase {
	return &rankingUseCase{
		logger:   logger.With("component", "ranking"),
		crawler:  crawler,
		settings: settings,
		rng:      pagerank.NewRand(settings.Seed),
	}
}

func (that *rankingUseCase) Rank(ctx context.Context, dir string) (*RankReport, error) {
	log := that.logger.With("method", "Rank", "dir", dir)

	corpus, err := that.crawler.Crawl(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to crawl corpus: %w", err)
	}

	sampled, err := pagerank.SampleRanks(corpus, that.settings.DampingFactor, that.settings.Samples, that.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to sample ranks: %w", err)
	}
	log.Debug("sampling finished", "samples", that.settings.Samples)

	iterated, err := pagerank.IterateRanks(corpus, that.settings.DampingFactor,
		pagerank.WithTolerance(that.settings.Tolerance),
		pagerank.WithMaxIterations(that.settings.MaxIterations),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate ranks: %w", err)
	}
	log.Debug("iteration finished", "sum", iterated.Sum())

	return &RankReport{
		Samples:  that.settings.Samples,
		Sampled:  sampled,
		Iterated: iterated,
	}, nil
}
