package pagerank

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
)

// Distribution maps every page of a corpus to the probability of visiting it next.
type Distribution map[string]float64

// TransitionModel returns where a random surfer on page goes next. With
// probability dampingFactor it follows one of the page's links chosen
// uniformly, otherwise it jumps to any page of the corpus. A dangling page
// jumps to any page with certainty.
func TransitionModel(corpus *Corpus, page string, dampingFactor float64) (Distribution, error) {
	if err := validate(corpus, dampingFactor); err != nil {
		return nil, err
	}

	if !corpus.Has(page) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPage, page)
	}

	pageCount := float64(corpus.Len())
	distribution := make(Distribution, corpus.Len())

	links := corpus.links[page]
	if len(links) == 0 {
		for _, p := range corpus.pages {
			distribution[p] = 1 / pageCount
		}
		return distribution, nil
	}

	share := dampingFactor / float64(len(links))
	for _, target := range links {
		distribution[target] = share
	}

	jump := (1 - dampingFactor) / pageCount
	for _, p := range corpus.pages {
		distribution[p] += jump
	}

	return distribution, nil
}

func (that Distribution) Sum() float64 {
	total := 0.0
	for _, page := range that.Pages() {
		total += that[page]
	}
	return total
}

// Pages - returns the pages of the distribution in sorted order.
func (that Distribution) Pages() []string {
	pages := make([]string, 0, len(that))
	for page := range that {
		pages = append(pages, page)
	}
	slices.Sort(pages)
	return pages
}

// Draw picks one page at random, weighted by its probability.
func (that Distribution) Draw(rng *rand.Rand) string {
	return newCumulative(that).draw(rng)
}

// cumulative is a distribution flattened into a running-total table.
type cumulative struct {
	pages  []string
	totals []float64
}

func newCumulative(distribution Distribution) *cumulative {
	table := &cumulative{
		pages:  distribution.Pages(),
		totals: make([]float64, 0, len(distribution)),
	}

	running := 0.0
	for _, page := range table.pages {
		running += distribution[page]
		table.totals = append(table.totals, running)
	}

	return table
}

func (that *cumulative) draw(rng *rand.Rand) string {
	if len(that.pages) == 0 {
		return ""
	}

	target := rng.Float64() * that.totals[len(that.totals)-1]

	// page i owns [totals[i-1], totals[i]); a target sitting exactly on a
	// boundary belongs to the next page with non-zero weight.
	idx, _ := slices.BinarySearch(that.totals, target)
	for idx < len(that.totals)-1 && that.totals[idx] <= target {
		idx++
	}
	idx = min(idx, len(that.pages)-1)

	return that.pages[idx]
}
