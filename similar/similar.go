// Package similar picks the closest known word for did-you-mean style
// suggestions when a requested name can't be resolved.
package similar

// MostSimilarWord returns the candidate with the smallest edit distance to
// word. Ties go to the earliest candidate, so callers that care about the
// tie-break must pass candidates in a stable order. Returns false when
// candidates is empty.
func MostSimilarWord(word string, candidates []string) (string, bool) {
	mostSimilar, minDist := "", 0
	found := false
	for _, candidate := range candidates {
		dist := Distance(candidate, word)
		if !found || dist < minDist {
			mostSimilar, minDist = candidate, dist
			found = true
		}
	}
	return mostSimilar, found
}

// Distance returns the Levenshtein edit distance between s and t: the
// minimum number of single-rune insertions, deletions, and substitutions
// needed to turn s into t. O(len(s)*len(t)) time and space, fine for
// identifier-sized strings.
func Distance(s, t string) int {
	sr, tr := []rune(s), []rune(t)

	dist := make([][]int, len(tr)+1)
	for i := range dist {
		dist[i] = make([]int, len(sr)+1)
		dist[i][0] = i
	}
	for j := range dist[0] {
		dist[0][j] = j
	}

	for i := 1; i <= len(tr); i++ {
		for j := 1; j <= len(sr); j++ {
			cost := 1
			if sr[j-1] == tr[i-1] {
				cost = 0
			}
			dist[i][j] = min(
				dist[i-1][j]+1,      // delete
				dist[i][j-1]+1,      // insert
				dist[i-1][j-1]+cost, // substitute
			)
		}
	}
	return dist[len(tr)][len(sr)]
}
