package match

// DefaultMinScore is the lowest Score Closest accepts as a suggestion.
const DefaultMinScore = 0.6

// Closest returns the candidate most similar to name, if any reaches
// minScore. An exact match is never suggested; ties keep the earlier
// candidate.
func Closest(name string, candidates []string, minScore float64) (string, bool) {
	best, bestScore := "", minScore

	found := false

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Score(name, c)
		if score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}
