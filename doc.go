// Package weasel provides a Go implementation of the classic "weasel" genetic
// string search.
//
// Given a goal string drawn from a fixed 27-symbol alphabet (the lowercase
// letters plus space), the algorithm evolves a population of candidate strings
// across generations. Each generation is scored by edit distance to the goal,
// the two best candidates are mated into the seed of the next generation, and
// every position of a derived candidate mutates with a configurable
// probability. The run ends when a candidate matches the goal exactly or a
// generation cap is reached, and reports how much better the search performed
// than blind random guessing would have.
//
// Basic usage:
//
//	// Load configuration
//	config, err := weasel.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create a new population
//	pop, err := weasel.NewPopulation(config)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	// Run the full evolution loop
//	result := pop.Run()
//
//	fmt.Printf("Found %q in %d generations (%s better than %s)\n",
//		result.FinalGenome, result.GenerationsUsed,
//		result.RelativeAdvantagePercent, result.RandomOddsDescription)
package weasel
