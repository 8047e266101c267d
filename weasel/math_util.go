package weasel

// --- Statistical helpers over generation scores ---

// Mean calculates the average of a slice of scores.
func Mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// MinInt returns the smallest score in the slice. Returns 0 for an empty
// slice.
func MinInt(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	minVal := scores[0]
	for i := 1; i < len(scores); i++ {
		if scores[i] < minVal {
			minVal = scores[i]
		}
	}
	return minVal
}

// MaxInt returns the largest score in the slice. Returns 0 for an empty
// slice.
func MaxInt(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	maxVal := scores[0]
	for i := 1; i < len(scores); i++ {
		if scores[i] > maxVal {
			maxVal = scores[i]
		}
	}
	return maxVal
}
