package match

import "strings"

// closestThreshold is the minimum similarity for a candidate to count
// as a plausible misspelling of the queried name.
const closestThreshold = 0.5

// Closest returns the candidate most similar to name, compared
// case-insensitively. The second return is false when no candidate
// clears the threshold; ties keep the earliest candidate.
func Closest(name string, candidates []string) (string, bool) {
	lower := strings.ToLower(name)

	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		score := Similarity(lower, strings.ToLower(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < closestThreshold {
		return "", false
	}

	return best, true
}
