package weasel

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// Population holds the state of the evolutionary search.
//
// All state that crosses a generation boundary lives here: the carried seed
// genome produced by mating the previous generation's two best candidates,
// the generation counter, and the single random number generator the whole
// run draws from. The per-generation leaderboard is reset at the start of
// every generation.
type Population struct {
	Config     *Config
	Generation int // index of the generation about to run (or just run)

	board  leaderboard
	seed   Genome // carried seed; only valid once seeded is true
	seeded bool
	rng    *rand.Rand
}

// NewPopulation creates a new Population instance for the configured run.
// A config seed of 0 derives the RNG seed from the current time; any other
// value makes the run fully reproducible.
func NewPopulation(config *Config) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Population{
		Config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// RunGeneration executes a single generation: generate the population, score
// every genome against the goal, and track the two best candidates.
//
// Returns the winning candidate if one matched the goal exactly this
// generation, otherwise nil after preparing the next generation's seed via
// mating and advancing the generation counter.
func (p *Population) RunGeneration() *Candidate {
	size := p.Config.Presets.PopulationSize()
	rate := p.Config.Presets.MutationRate()
	goal := p.Config.Run.Goal

	// 1. Generate. Serial on the run's single RNG so results do not depend
	// on the worker count used for scoring.
	genomes := make([]Genome, size)
	for i := range genomes {
		if p.seeded {
			genomes[i] = p.seed.Derive(rate, p.rng)
		} else {
			genomes[i] = RandomGenome(len(goal), p.rng)
		}
	}

	// 2. Score.
	scores := p.scoreAll(genomes, goal)

	// 3. Select. Folding in population order keeps the first-seen tie rule
	// deterministic regardless of how the scores were computed.
	p.board.Reset()
	for i, g := range genomes {
		p.board.Offer(g, scores[i])
	}

	best := p.board.Best()
	if p.Config.Run.Verbose {
		fmt.Printf(" Generation %d: best score %d, worst %d, mean %.2f, best genome %q\n",
			p.Generation, best.Score, MaxInt(scores), Mean(scores), string(best.Genome))
	}

	// 4. Terminate or continue.
	if best.Score == 0 {
		return best
	}

	parentA, parentB := p.board.Parents()
	p.seed = Mate(parentA, parentB)
	p.seeded = true
	p.Generation++
	return nil
}

// Run drives generations until a genome matches the goal or the generation
// cap is exceeded, then computes the run statistics. Reaching the cap without
// a match is a normal outcome, not an error: the result then carries the best
// genome of the last completed generation with GoalReached set to false.
func (p *Population) Run() *RunResult {
	genCap := p.Config.Presets.Cap()
	for p.Generation <= genCap {
		if winner := p.RunGeneration(); winner != nil {
			return p.newResult(winner, true)
		}
	}

	// Cap exceeded. The leaderboard still holds the best candidate of the
	// last completed generation (index genCap); report that as the best
	// effort.
	p.Generation = genCap
	return p.newResult(p.board.Best(), false)
}

// scoreAll computes the edit distance of every genome to the goal. With more
// than one worker configured the scoring fans out over a bounded goroutine
// pool; scores land in their genome's slot, so the output order is identical
// either way.
func (p *Population) scoreAll(genomes []Genome, goal string) []int {
	scores := make([]int, len(genomes))

	workers := p.Config.Run.Workers
	if workers <= 1 {
		for i, g := range genomes {
			scores[i] = EditDistance(string(g), goal)
		}
		return scores
	}

	scorers := pool.New().WithMaxGoroutines(workers)
	for i, g := range genomes {
		i, g := i, g
		scorers.Go(func() {
			scores[i] = EditDistance(string(g), goal)
		})
	}
	scorers.Wait()
	return scores
}

// newResult assembles the RunResult for the finished run.
func (p *Population) newResult(final *Candidate, reached bool) *RunResult {
	size := p.Config.Presets.PopulationSize()
	tries := size * (p.Generation + 1)

	odds, representable := RandomOdds(len(p.Config.Run.Goal))

	return &RunResult{
		FinalGenome:              string(final.Genome),
		FinalScore:               final.Score,
		GoalReached:              reached,
		GenerationsUsed:          p.Generation,
		TriesUsed:                tries,
		RandomOddsDescription:    FormatRandomOdds(odds, representable),
		RelativeAdvantagePercent: RelativeAdvantagePercent(tries, odds, representable),
	}
}
