package pagerank

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
)

// Corpus is a read-only directed link graph. Pages are kept sorted so every
// walk over the corpus happens in the same order.
type Corpus struct {
	pages []string
	links map[string][]string
}

// NewCorpus builds a Corpus from page → linked pages. Links to pages that are
// not keys of the mapping are dropped, duplicates are collapsed.
func NewCorpus(pages map[string][]string) (*Corpus, error) {
	if len(pages) == 0 {
		return nil, apperror.ErrEmptyCorpus
	}

	corpus := &Corpus{
		pages: make([]string, 0, len(pages)),
		links: make(map[string][]string, len(pages)),
	}

	for page, targets := range pages {
		corpus.pages = append(corpus.pages, page)

		kept := make([]string, 0, len(targets))
		for _, target := range targets {
			if _, ok := pages[target]; ok {
				kept = append(kept, target)
			}
		}
		slices.Sort(kept)
		corpus.links[page] = slices.Compact(kept)
	}
	slices.Sort(corpus.pages)

	return corpus, nil
}

// Len - returns the number of pages.
func (that *Corpus) Len() int {
	return len(that.pages)
}

// Pages - returns every page in sorted order.
func (that *Corpus) Pages() []string {
	return slices.Clone(that.pages)
}

func (that *Corpus) Has(page string) bool {
	_, ok := that.links[page]
	return ok
}

// Links - returns the pages linked from page, sorted.
func (that *Corpus) Links(page string) []string {
	return slices.Clone(that.links[page])
}

func (that *Corpus) OutDegree(page string) int {
	return len(that.links[page])
}

func (that *Corpus) IsDangling(page string) bool {
	return that.Has(page) && len(that.links[page]) == 0
}

// Inbound - returns the reverse adjacency: page → pages linking to it.
func (that *Corpus) Inbound() map[string][]string {
	inbound := make(map[string][]string, len(that.pages))
	for _, page := range that.pages {
		inbound[page] = nil
	}

	// pages are visited in sorted order, so every inbound list comes out sorted
	for _, page := range that.pages {
		for _, target := range that.links[page] {
			inbound[target] = append(inbound[target], page)
		}
	}

	return inbound
}

func (that *Corpus) dangling() []string {
	var pages []string
	for _, page := range that.pages {
		if len(that.links[page]) == 0 {
			pages = append(pages, page)
		}
	}
	return pages
}

func validate(corpus *Corpus, dampingFactor float64) error {
	if corpus == nil || corpus.Len() == 0 {
		return apperror.ErrEmptyCorpus
	}

	// written as a negation so NaN is rejected too
	if !(dampingFactor >= 0 && dampingFactor <= 1) {
		return fmt.Errorf("%w: got %v", apperror.ErrInvalidDampingFactor, dampingFactor)
	}

	return nil
}
