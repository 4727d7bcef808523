package pagerank

import "slices"

// Ranks maps every page of a corpus to its estimated PageRank.
type Ranks map[string]float64

func (that Ranks) Sum() float64 {
	total := 0.0
	for _, page := range that.Pages() {
		total += that[page]
	}
	return total
}

// Pages - returns the ranked pages in sorted order.
func (that Ranks) Pages() []string {
	pages := make([]string, 0, len(that))
	for page := range that {
		pages = append(pages, page)
	}
	slices.Sort(pages)
	return pages
}
