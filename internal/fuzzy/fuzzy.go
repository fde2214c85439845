// Package fuzzy ranks did-you-mean candidates for parse errors. Candidates
// are gated by Levenshtein distance and ordered by Jaro-Winkler similarity,
// so short typos ("pshu" for "push") rank their intended target first.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/xrash/smetrics"
)

// DefaultMaxDistance is the edit-distance gate applied when the caller does
// not supply one.
const DefaultMaxDistance = 2

// minInputLength guards against suggesting for one-character inputs, which
// are within distance of almost everything.
const minInputLength = 2

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64
}

// Rank returns the candidates within maxDistance of input, best first.
// Exact matches are skipped; the caller only asks after a lookup failed,
// so an exact hit means a case-mode mismatch, not a typo.
func Rank(input string, candidates []string, maxDistance int) []Match {
	if len(input) < minInputLength {
		return nil
	}
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}

	in := strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == in {
			continue
		}
		distance := levenshtein.Distance(in, lower, nil)
		if distance > maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    smetrics.JaroWinkler(in, lower, 0.7, 4),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Value < matches[j].Value
	})
	return matches
}

// Suggest returns up to limit candidate names, best first.
func Suggest(input string, candidates []string, maxDistance, limit int) []string {
	matches := Rank(input, candidates, maxDistance)
	if len(matches) == 0 {
		return nil
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Value
	}
	return out
}

// Best returns the single best candidate, or "" when nothing is close
// enough.
func Best(input string, candidates []string, maxDistance int) string {
	matches := Rank(input, candidates, maxDistance)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}
