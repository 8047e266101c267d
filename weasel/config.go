package weasel

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Preset tables for the three tunable run parameters. Each preset is selected
// by an index in 0..3; anything outside that range resolves to the named
// fallback below.
var (
	// MutationPresets holds the mutation-rate denominators. The effective
	// per-position mutation probability is 1/(denominator-1), so a smaller
	// denominator means a higher mutation rate.
	MutationPresets = [4]int{20, 10, 5, 2}

	// PopulationPresets holds the number of genomes evaluated per generation.
	PopulationPresets = [4]int{10, 100, 1000, 10000}
)

// GenerationCapStep is multiplied by (index+1) to produce the generation cap,
// giving caps of 100, 200, 300 and 400 for the four presets.
const GenerationCapStep = 100

// Named fallbacks applied when a preset index is outside 0..3. These are
// deliberate, documented defaults rather than silent behavior.
const (
	FallbackMutationDenominator = 100
	FallbackPopulationSize      = 10
	FallbackGenerationCap       = GenerationCapStep
)

// Config stores the configuration parameters for one evolution run.
type Config struct {
	Run     RunConfig
	Presets PresetConfig
}

// RunConfig holds the parameters that identify a run: the goal string and the
// execution knobs that do not change the search semantics.
type RunConfig struct {
	// Goal is the string the population evolves toward. It must consist only
	// of symbols from Alphabet; callers are responsible for lowercasing input
	// before it reaches the core. An empty goal is legal and trivially
	// converges at generation 0.
	Goal string `ini:"goal"`

	// Seed for the run's random number generator. 0 means derive a seed from
	// the current time; any other value makes the run fully reproducible.
	Seed int64 `ini:"seed"`

	// Workers is the number of goroutines used to score a generation.
	// Values <= 1 score serially. The result is identical for any worker
	// count given the same seed.
	Workers int `ini:"workers"`

	// Verbose enables per-generation progress output.
	Verbose bool `ini:"verbose"`
}

// PresetConfig selects one entry from each preset table by index.
type PresetConfig struct {
	Mutation      int `ini:"mutation"`
	Population    int `ini:"population"`
	GenerationCap int `ini:"generation_cap"`
}

// MutationDenominator resolves the mutation preset index to a denominator,
// falling back to FallbackMutationDenominator for out-of-range indices.
func (pc *PresetConfig) MutationDenominator() int {
	if pc.Mutation < 0 || pc.Mutation >= len(MutationPresets) {
		return FallbackMutationDenominator
	}
	return MutationPresets[pc.Mutation]
}

// MutationRate returns the effective per-position mutation probability,
// 1/(denominator-1). A denominator of 2 yields 1.0: every position is redrawn.
func (pc *PresetConfig) MutationRate() float64 {
	return 1.0 / float64(pc.MutationDenominator()-1)
}

// PopulationSize resolves the population preset index, falling back to
// FallbackPopulationSize for out-of-range indices.
func (pc *PresetConfig) PopulationSize() int {
	if pc.Population < 0 || pc.Population >= len(PopulationPresets) {
		return FallbackPopulationSize
	}
	return PopulationPresets[pc.Population]
}

// Cap resolves the generation-cap preset index to the maximum generation
// index the run may reach, falling back to FallbackGenerationCap for
// out-of-range indices.
func (pc *PresetConfig) Cap() int {
	if pc.GenerationCap < 0 || pc.GenerationCap > 3 {
		return FallbackGenerationCap
	}
	return (pc.GenerationCap + 1) * GenerationCapStep
}

// NewConfig builds a Config directly, for test harnesses and embedding
// callers that do not read a file. The preset indices follow the same
// fallback rules as file-loaded configuration.
func NewConfig(goal string, mutationPreset, populationPreset, capPreset int) *Config {
	return &Config{
		Run: RunConfig{Goal: goal},
		Presets: PresetConfig{
			Mutation:      mutationPreset,
			Population:    populationPreset,
			GenerationCap: capPreset,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	// Map sections to structs
	if err := cfg.Section("Run").MapTo(&config.Run); err != nil {
		return nil, fmt.Errorf("failed to map [Run] section: %w", err)
	}
	if err := cfg.Section("Presets").MapTo(&config.Presets); err != nil {
		return nil, fmt.Errorf("failed to map [Presets] section: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the semantic constraints the preset fallbacks cannot cover.
// Preset indices are never an error: out-of-range values resolve to the named
// fallbacks instead.
func (c *Config) Validate() error {
	for i, r := range c.Run.Goal {
		if !strings.ContainsRune(Alphabet, r) {
			return fmt.Errorf("config error: goal contains symbol %q at position %d; only lowercase letters and space are allowed", r, i)
		}
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("config error: workers cannot be negative")
	}
	return nil
}
