package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/pagerank"
)

const pageExt = ".html"

type Crawler interface {
	// Crawl reads every HTML page in dir and returns the corpus of links between them.
	Crawl(ctx context.Context, dir string) (*pagerank.Corpus, error)
}

type htmlCrawler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) Crawler {
	return &htmlCrawler{
		logger: logger.With("component", "crawler"),
	}
}

func (that *htmlCrawler) Crawl(ctx context.Context, dir string) (*pagerank.Corpus, error) {
	log := that.logger.With("dir", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	pages := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pageExt) {
			continue
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("crawl interrupted: %w", ctxErr)
		}

		links, err := that.extractLinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		pages[entry.Name()] = links
		log.Debug("parsed page", "page", entry.Name(), "links", len(links))
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", apperror.ErrEmptyCorpus, pageExt, dir)
	}

	corpus, err := pagerank.NewCorpus(pages)
	if err != nil {
		return nil, fmt.Errorf("failed to build corpus: %w", err)
	}

	log.Info("corpus loaded", "pages", corpus.Len())

	return corpus, nil
}

// extractLinks - returns the href of every anchor on the page except links to itself.
func (that *htmlCrawler) extractLinks(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open page: %w", err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("can't parse html: %w", err)
	}

	self := filepath.Base(path)

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}

		href = strings.TrimSpace(href)
		if href == "" || href == self {
			return
		}

		links = append(links, href)
	})

	return links, nil
}
