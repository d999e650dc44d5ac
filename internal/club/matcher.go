package club

import (
	"sort"
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
	"github.com/mauv0809/puckpal/internal/stats"
)

// minConfidence is the lowest similarity BestMatch accepts.
const minConfidence = 0.6

// NameMatch is a roster player scored against a free-text name.
type NameMatch struct {
	Player     stats.Player
	Confidence float64
}

// RankByName scores every player against query and returns those above zero,
// best first.
func RankByName(query string, players []stats.Player) []NameMatch {
	normalizedQuery := normalizeName(query)
	if normalizedQuery == "" {
		return nil
	}

	var matches []NameMatch
	for _, p := range players {
		score := similarity(normalizedQuery, normalizeName(p.Name))
		if score > 0 {
			matches = append(matches, NameMatch{Player: p, Confidence: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// BestMatch returns the player whose name is most similar to query, if it is
// similar enough to be trusted.
func BestMatch(query string, players []stats.Player) (NameMatch, bool) {
	ranked := RankByName(query, players)
	if len(ranked) == 0 || ranked[0].Confidence < minConfidence {
		return NameMatch{}, false
	}
	return ranked[0], true
}

// similarity averages whole-string and per-token similarity.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return (stringSimilarity(a, b) + tokenSimilarity(a, b)) / 2
}

// normalizeName lowercases, transliterates accents and keeps only letters
// separated by single spaces.
func normalizeName(name string) string {
	name = strings.ToLower(unidecode.Unidecode(strings.TrimSpace(name)))

	var result strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// stringSimilarity is one minus the normalised edit distance.
func stringSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if s1 == "" || s2 == "" {
		return 0.0
	}
	maxLen := max(len(s1), len(s2))
	return 1.0 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
}

// tokenSimilarity is the share of tokens that have a close counterpart.
func tokenSimilarity(s1, s2 string) float64 {
	tokens1 := strings.Fields(s1)
	tokens2 := strings.Fields(s2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0.0
	}

	var matchCount int
	for _, t1 := range tokens1 {
		for _, t2 := range tokens2 {
			if stringSimilarity(t1, t2) > 0.8 {
				matchCount++
				break
			}
		}
	}
	return float64(matchCount) / float64(max(len(tokens1), len(tokens2)))
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}
