package weasel

import (
	"fmt"
	"math"
	"strconv"
)

// RunResult is the outward-facing record of one finished evolution run.
type RunResult struct {
	// FinalGenome is the matching genome, or the best effort found in the
	// last completed generation when the cap was reached first.
	FinalGenome string
	// FinalScore is FinalGenome's edit distance to the goal; 0 on a match.
	FinalScore int
	// GoalReached reports whether FinalGenome matches the goal exactly.
	GoalReached bool
	// GenerationsUsed is the index of the generation the run stopped in.
	GenerationsUsed int
	// TriesUsed is the total number of genomes evaluated across the run.
	TriesUsed int
	// RandomOddsDescription describes the odds of blind random guessing
	// producing the goal in one try, formatted as "1 in <odds>", or a
	// degraded message when the odds exceed the representable range.
	RandomOddsDescription string
	// RelativeAdvantagePercent is the probability, as a fixed-precision
	// percentage, that random guessing would have found the goal within
	// TriesUsed tries, or DegradedAdvantagePercent when the odds overflow.
	RelativeAdvantagePercent string
}

// DegradedAdvantagePercent is reported when the random-odds computation
// exceeds the representable floating-point range.
const DegradedAdvantagePercent = "0.000000000000001%"

// advantagePrecision is the fixed number of fractional digits the relative
// advantage is rounded to.
const advantagePrecision = 15

// RandomOdds computes AlphabetSize^goalLength, the number of equally likely
// strings a blind random guess chooses from. The second return value reports
// whether the result fits in a float64; the check compares logarithms before
// any power is taken, so no overflow ever happens.
func RandomOdds(goalLength int) (float64, bool) {
	if float64(goalLength)*math.Log10(float64(AlphabetSize)) > math.Log10(math.MaxFloat64) {
		return 0, false
	}
	return math.Pow(float64(AlphabetSize), float64(goalLength)), true
}

// FormatRandomOdds renders the odds as "1 in <odds>", or a descriptive
// fallback when the odds were not representable.
func FormatRandomOdds(odds float64, representable bool) string {
	if !representable {
		return "1 in a number too large to represent"
	}
	return "1 in " + strconv.FormatFloat(odds, 'g', -1, 64)
}

// RelativeAdvantagePercent computes how likely random guessing would have
// been to find the goal using the same number of tries, as a percentage with
// a fixed fractional precision. The ratio is clamped to [0, 100]: once the
// tries meet or exceed the odds the probability is simply reported as 100%.
// When the odds were not representable the degraded default is returned.
func RelativeAdvantagePercent(tries int, odds float64, representable bool) string {
	if !representable {
		return DegradedAdvantagePercent
	}
	percent := float64(tries) / odds * 100.0
	if percent > 100.0 {
		percent = 100.0
	}
	return fmt.Sprintf("%.*f%%", advantagePrecision, percent)
}
