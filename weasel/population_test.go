package weasel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(goal string, mutation, population, generationCap int, seed int64) *Config {
	cfg := NewConfig(goal, mutation, population, generationCap)
	cfg.Run.Seed = seed
	return cfg
}

func TestPopulation_ConvergesOneCharGoal(t *testing.T) {
	// Population 100, full per-position mutation, cap 100. A one-symbol goal
	// is all but guaranteed to appear within a handful of generations.
	cfg := newTestConfig("a", 3, 1, 0, 42)

	pop, err := NewPopulation(cfg)
	require.NoError(t, err)

	result := pop.Run()

	require.True(t, result.GoalReached)
	assert.Equal(t, "a", result.FinalGenome)
	assert.Zero(t, result.FinalScore)
	assert.LessOrEqual(t, result.GenerationsUsed, 25)
	assert.Equal(t, 100*(result.GenerationsUsed+1), result.TriesUsed)
}

func TestPopulation_ReproducibleWithFixedSeed(t *testing.T) {
	run := func() *RunResult {
		pop, err := NewPopulation(newTestConfig("weasel", 1, 1, 0, 1234))
		require.NoError(t, err)
		return pop.Run()
	}

	first := run()
	second := run()

	assert.Equal(t, *first, *second, "identical seeds must yield identical runs")
}

func TestPopulation_WorkerCountDoesNotChangeResult(t *testing.T) {
	run := func(workers int) *RunResult {
		cfg := newTestConfig("go gopher", 1, 1, 0, 7)
		cfg.Run.Workers = workers
		pop, err := NewPopulation(cfg)
		require.NoError(t, err)
		return pop.Run()
	}

	serial := run(1)
	parallel := run(8)

	assert.Equal(t, *serial, *parallel, "scoring parallelism must not change the outcome")
}

func TestPopulation_NeverExceedsGenerationCap(t *testing.T) {
	// Population 10 and a low mutation rate against a long goal: almost
	// certainly runs into the cap, and must stop there with a best effort.
	goal := "the quick brown fox jumps over the lazy dog"
	cfg := newTestConfig(goal, 0, 0, 0, 99)

	pop, err := NewPopulation(cfg)
	require.NoError(t, err)

	result := pop.Run()

	assert.LessOrEqual(t, result.GenerationsUsed, cfg.Presets.Cap())
	require.Len(t, result.FinalGenome, len(goal))
	assert.Equal(t, EditDistance(result.FinalGenome, goal), result.FinalScore)
	if !result.GoalReached {
		assert.Positive(t, result.FinalScore)
	}
}

func TestPopulation_EmptyGoal(t *testing.T) {
	pop, err := NewPopulation(newTestConfig("", 0, 0, 0, 5))
	require.NoError(t, err)

	result := pop.Run()

	require.True(t, result.GoalReached)
	assert.Empty(t, result.FinalGenome)
	assert.Zero(t, result.GenerationsUsed)
	assert.Equal(t, FallbackPopulationSize, result.TriesUsed)
	assert.Equal(t, "1 in 1", result.RandomOddsDescription)
	assert.Equal(t, "100.000000000000000%", result.RelativeAdvantagePercent)
}

func TestRunGeneration_WinnerHasScoreZero(t *testing.T) {
	cfg := newTestConfig("z", 3, 1, 0, 11)
	pop, err := NewPopulation(cfg)
	require.NoError(t, err)

	var winner *Candidate
	for g := 0; g <= cfg.Presets.Cap(); g++ {
		if winner = pop.RunGeneration(); winner != nil {
			break
		}
	}

	require.NotNil(t, winner, "expected a one-symbol goal to be found before the cap")
	assert.Zero(t, winner.Score)
	assert.Equal(t, Genome("z"), winner.Genome)
}

func TestNewPopulation_RejectsInvalidGoal(t *testing.T) {
	_, err := NewPopulation(NewConfig("Weasel", 0, 0, 0))
	require.Error(t, err)
}
