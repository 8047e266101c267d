package weasel

import (
	"fmt"
	"math/rand"
)

// Alphabet is the fixed symbol set genomes are drawn from: the 26 lowercase
// letters plus space.
const Alphabet = "abcdefghijklmnopqrstuvwxyz "

// AlphabetSize is the number of symbols in Alphabet.
const AlphabetSize = len(Alphabet)

// Genome is a candidate solution: a fixed-length string over Alphabet, always
// exactly as long as the goal string. A genome is never modified in place;
// every operation produces a new one.
type Genome string

// randomSymbol draws one symbol uniformly from the alphabet.
func randomSymbol(rng *rand.Rand) byte {
	return Alphabet[rng.Intn(AlphabetSize)]
}

// RandomGenome produces a genome of the given length with every symbol drawn
// independently and uniformly from the alphabet. Used for generation 0, where
// no seed genome exists yet. A length of 0 yields the empty genome.
func RandomGenome(length int, rng *rand.Rand) Genome {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = randomSymbol(rng)
	}
	return Genome(buf)
}

// Derive produces a new genome from g by per-position mutation: each position
// independently mutates with probability rate, in which case it is replaced
// by a uniform random alphabet symbol (which may coincide with the old one);
// otherwise the symbol is copied unchanged. A rate of 1.0 redraws every
// position, a rate of 0 copies g exactly.
func (g Genome) Derive(rate float64, rng *rand.Rand) Genome {
	buf := []byte(g)
	for i := range buf {
		if rng.Float64() < rate {
			buf[i] = randomSymbol(rng)
		}
	}
	return Genome(buf)
}

// Mate combines two parent genomes of equal length into one offspring by
// positional splicing: the first ceil(L/2) symbols of a followed by the
// remaining symbols of b. The orchestrator guarantees equal-length parents;
// anything else is an invariant breach.
func Mate(a, b Genome) Genome {
	if len(a) != len(b) {
		panic(fmt.Sprintf("Mate called with unequal genome lengths: %d vs %d", len(a), len(b)))
	}
	split := (len(a) + 1) / 2
	return a[:split] + b[split:]
}
