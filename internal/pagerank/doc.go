// Package pagerank estimates the PageRank of every page in a corpus of
// linked documents.
//
// A Corpus is an immutable adjacency list: page → sorted set of pages it
// links to, restricted to pages that belong to the corpus. Two estimators
// work on it:
//
//   - SampleRanks walks a random surfer through the corpus for n steps using
//     TransitionModel and reports the share of visits per page.
//   - IterateRanks applies the PageRank equation synchronously until no page
//     moves by more than the tolerance.
//
// Dangling pages (no outbound links inside the corpus) are treated as linking
// to every page, including themselves. Both estimators follow that rule, so
// their results agree and always sum to one.
//
// Randomness is injected as a *math/rand.Rand so runs can be reproduced from
// a seed.
package pagerank
