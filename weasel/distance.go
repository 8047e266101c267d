package weasel

// EditDistance computes the classic Levenshtein distance between a and b: the
// minimum number of single-symbol insertions, deletions, or substitutions
// needed to transform a into b. It fills the full (len(a)+1) x (len(b)+1)
// dynamic-programming table, where cell [i][j] holds the minimum number of
// edits transforming the first i symbols of a into the first j symbols of b.
// The function is deterministic, has no side effects, and always succeeds,
// including for empty inputs (the distance is then the other string's length).
func EditDistance(a, b string) int {
	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := d[i-1][j] + 1
			insertion := d[i][j-1] + 1
			substitution := d[i-1][j-1] + cost

			minEdits := deletion
			if insertion < minEdits {
				minEdits = insertion
			}
			if substitution < minEdits {
				minEdits = substitution
			}
			d[i][j] = minEdits
		}
	}
	return d[len(a)][len(b)]
}
