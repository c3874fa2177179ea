package timsort

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Benchmarks here measure comparisons, not just time. Comparisons are what
// the algorithm promises to bound:
//
//	presorted input:  n-1 comparisons
//	any input:        O(n·log2 n) comparisons
//
// Each (pattern, size) pair is one case. Cases run concurrently, but every
// case sorts its own slice, so the sort itself stays single-threaded.

// Pattern names a shape of generated input.
type Pattern string

const (
	PatternRandom          Pattern = "random"           // uniformly random values
	PatternSorted          Pattern = "sorted"           // 0, 1, 2, ...
	PatternReversed        Pattern = "reversed"         // strictly descending
	PatternFewUnique       Pattern = "few-unique"       // 10 distinct values, shuffled
	PatternEqual           Pattern = "equal"            // every element the same
	PatternPartiallySorted Pattern = "partially-sorted" // every other n/100 chunk sorted
	PatternSawtooth        Pattern = "sawtooth"         // interleaved ascending stretches
)

// Patterns returns every known pattern.
func Patterns() []Pattern {
	return []Pattern{
		PatternRandom,
		PatternSorted,
		PatternReversed,
		PatternFewUnique,
		PatternEqual,
		PatternPartiallySorted,
		PatternSawtooth,
	}
}

// ParsePattern looks up a pattern by name, case-insensitively.
func ParsePattern(name string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(name)))
	if containsPattern(Patterns(), p) {
		return p, nil
	}
	return "", errors.WithHintf(
		errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", name),
		"known patterns: %v", Patterns())
}

// sawtoothTeeth is the number of ascending stretches in PatternSawtooth,
// and sawtoothBlock the length of the value blocks they interleave in.
// Blocks longer than minGallop make merges of the teeth gallop.
const (
	sawtoothTeeth = 8
	sawtoothBlock = 16
)

// Generate returns n values in the shape of p.
func Generate(p Pattern, n int, rng *rand.Rand) ([]int64, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "negative size %d", n)
	}
	s := make([]int64, n)

	switch p {
	case PatternRandom:
		for i := range s {
			s[i] = rng.Int63()
		}
	case PatternSorted:
		for i := range s {
			s[i] = int64(i)
		}
	case PatternReversed:
		for i := range s {
			s[i] = int64(n - i)
		}
	case PatternFewUnique:
		for i := range s {
			s[i] = int64(i % 10)
		}
		rng.Shuffle(n, func(i, j int) { s[i], s[j] = s[j], s[i] })
	case PatternEqual:
		for i := range s {
			s[i] = 1
		}
	case PatternPartiallySorted:
		for i := range s {
			s[i] = rng.Int63()
		}
		chunk := n / 100
		if chunk == 0 {
			break
		}
		for lo := 0; lo < n; lo += 2 * chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			Sort(s[lo:hi])
		}
	case PatternSawtooth:
		tooth := (n + sawtoothTeeth - 1) / sawtoothTeeth
		for i := range s {
			t, j := i/tooth, i%tooth
			s[i] = int64((j/sawtoothBlock)*sawtoothBlock*sawtoothTeeth + t*sawtoothBlock + j%sawtoothBlock)
		}
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", p)
	}
	return s, nil
}

// ErrInvalidConfig is returned (wrapped) for unusable benchmark settings.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// BenchConfig controls benchmark execution.
type BenchConfig struct {
	Sizes    []int     `yaml:"sizes"`    // Input lengths to test
	Patterns []Pattern `yaml:"patterns"` // Input shapes to test
	Rounds   int       `yaml:"rounds"`   // Sorts per case, each on fresh input
	Workers  int       `yaml:"workers"`  // Cases run at once
	Seed     int64     `yaml:"seed"`     // Base seed; case i uses Seed+i
}

// DefaultBenchConfig returns sensible defaults, modelled on the classic
// small/medium/large sort benchmarks.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Sizes:    []int{5, 100, 10_000},
		Patterns: Patterns(),
		Rounds:   10,
		Workers:  4,
		Seed:     1,
	}
}

// Validate reports the first unusable setting.
func (c BenchConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no sizes")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return errors.Wrapf(ErrInvalidConfig, "negative size %d", n)
		}
	}
	if len(c.Patterns) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no patterns")
	}
	for _, p := range c.Patterns {
		if !containsPattern(Patterns(), p) {
			return errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", p)
		}
	}
	if c.Rounds < 1 {
		return errors.Wrapf(ErrInvalidConfig, "rounds must be at least 1, got %d", c.Rounds)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// BenchResult contains measurements for one (pattern, size) case.
type BenchResult struct {
	Pattern     Pattern
	N           int
	Rounds      int
	Comparisons int64           // Total over all rounds
	Durations   []time.Duration // One per round
}

// ComparisonsPerElement is the mean number of comparisons per element
// per sort.
func (r BenchResult) ComparisonsPerElement() float64 {
	if r.N == 0 || r.Rounds == 0 {
		return 0
	}
	return float64(r.Comparisons) / float64(r.Rounds) / float64(r.N)
}

// Ratio is the mean comparisons per sort relative to n·log2 n.
// Values well under 1 mean the input was exploited.
func (r BenchResult) Ratio() float64 {
	if r.N < 2 || r.Rounds == 0 {
		return 0
	}
	n := float64(r.N)
	return float64(r.Comparisons) / float64(r.Rounds) / (n * math.Log2(n))
}

// Throughput is elements sorted per second.
func (r BenchResult) Throughput() float64 {
	var total time.Duration
	for _, d := range r.Durations {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(r.N) * float64(len(r.Durations)) / total.Seconds()
}

// RunBench runs every (pattern, size) case in cfg and returns results in
// pattern-major order.
func RunBench(ctx context.Context, cfg BenchConfig) ([]BenchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	type benchCase struct {
		pattern Pattern
		n       int
	}
	cases := make([]benchCase, 0, len(cfg.Patterns)*len(cfg.Sizes))
	for _, p := range cfg.Patterns {
		for _, n := range cfg.Sizes {
			cases = append(cases, benchCase{pattern: p, n: n})
		}
	}

	results := make([]BenchResult, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			r, err := runCase(ctx, c.pattern, c.n, cfg.Rounds, rng)
			if err != nil {
				return errors.Wrapf(err, "pattern %s n=%d", c.pattern, c.n)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runCase sorts rounds freshly generated inputs, counting comparisons.
func runCase(ctx context.Context, p Pattern, n, rounds int, rng *rand.Rand) (BenchResult, error) {
	result := BenchResult{
		Pattern:   p,
		N:         n,
		Rounds:    rounds,
		Durations: make([]time.Duration, 0, rounds),
	}

	var comparisons int64
	gt := func(a, b int64) (bool, error) {
		comparisons++
		return a > b, nil
	}

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return BenchResult{}, err
		}

		data, err := Generate(p, n, rng)
		if err != nil {
			return BenchResult{}, err
		}

		start := time.Now()
		if err := TrySortByGreater(data, gt); err != nil {
			return BenchResult{}, err
		}
		result.Durations = append(result.Durations, time.Since(start))

		if !IsSorted(data) {
			return BenchResult{}, errors.AssertionFailedf("round %d left input unsorted", round)
		}
	}

	result.Comparisons = comparisons
	return result, nil
}

// Statistics contains percentile latency data.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration

	// TailRatio is P99/P50. Near 1 the rounds took about the same time;
	// large values mean a few slow rounds (GC, preemption) dominate.
	TailRatio float64
}

// CalculateStatistics computes percentile sort durations.
func CalculateStatistics(result BenchResult) Statistics {
	if len(result.Durations) == 0 {
		return Statistics{}
	}

	sorted := make([]time.Duration, len(result.Durations))
	copy(sorted, result.Durations)
	Sort(sorted)

	// Mean
	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	mean := sum / time.Duration(len(sorted))

	// Standard deviation
	var variance float64
	for _, d := range sorted {
		diff := float64(d - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	stats := Statistics{
		Mean:      mean,
		Stddev:    stddev,
		P50:       sorted[len(sorted)*50/100],
		P95:       sorted[len(sorted)*95/100],
		P99:       sorted[len(sorted)*99/100],
		TailRatio: 1,
	}
	if stats.P50 > 0 {
		stats.TailRatio = float64(stats.P99) / float64(stats.P50)
	}
	return stats
}
