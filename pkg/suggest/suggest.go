// Package suggest ranks near matches for a mistyped name.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be offered.
const threshold = 0.5

// Closest returns up to maxResults candidates similar to target, best match
// first. Ties break lexicographically so the result is stable regardless of the
// candidate order.
func Closest(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return nil
	}
	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			ranked = append(ranked, scored{name: name, score: score})
		}
	}
	slices.SortFunc(ranked, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.name, b.name)
	})
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.name)
	}
	return out
}

// similarity scores candidate against target on [0, 1]: exact matches score 1,
// prefix matches 0.9, everything else by normalized edit distance.
func similarity(target, candidate string) float64 {
	target, candidate = strings.ToLower(target), strings.ToLower(candidate)
	if target == candidate {
		return 1
	}
	if strings.HasPrefix(candidate, target) {
		return 0.9
	}
	longest := max(len(target), len(candidate))
	return 1 - float64(editDistance(target, candidate))/float64(longest)
}

// editDistance is the Levenshtein distance, computed with a rolling row.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
