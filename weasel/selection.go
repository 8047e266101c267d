package weasel

// Candidate pairs a genome with its fitness score. A score of 0 means the
// genome matches the goal exactly; lower is always better.
type Candidate struct {
	Genome Genome
	Score  int
}

// leaderboard tracks the two best candidates seen within one generation. The
// slots are explicit optionals rather than entries pre-filled with an
// impossibly large score, so "no candidate yet" cannot be confused with a
// real result.
type leaderboard struct {
	best   *Candidate
	second *Candidate
}

// Offer submits a candidate for the two slots. A score strictly lower than
// the best slot's replaces the best slot (an empty slot loses to any score);
// otherwise a score strictly lower than the second slot's replaces the second
// slot. Ties never replace, so the first-seen candidate wins.
func (l *leaderboard) Offer(g Genome, score int) {
	switch {
	case l.best == nil || score < l.best.Score:
		l.best = &Candidate{Genome: g, Score: score}
	case l.second == nil || score < l.second.Score:
		l.second = &Candidate{Genome: g, Score: score}
	}
}

// Best returns the best candidate seen so far this generation, or nil if
// nothing has been offered since the last Reset.
func (l *leaderboard) Best() *Candidate {
	return l.best
}

// Parents returns the two genomes to mate into the next generation's seed.
// If the second slot never filled (for example, a tiny population whose
// scores only ever improved on the best slot), the best genome is duplicated
// into the missing slot so an empty parent can never reach Mate. Requires at
// least one prior Offer.
func (l *leaderboard) Parents() (Genome, Genome) {
	if l.second == nil {
		return l.best.Genome, l.best.Genome
	}
	return l.best.Genome, l.second.Genome
}

// Reset empties both slots. Called at the start of every generation.
func (l *leaderboard) Reset() {
	l.best = nil
	l.second = nil
}
