package timsort

import (
	"fmt"
	"testing"
)

// AssertionConfig contains thresholds for comparison-count properties.
type AssertionConfig struct {
	// Comparisons per element allowed on presorted input (sorted,
	// strictly reversed, all equal). One run costs n-1 comparisons.
	MaxPresortedPerElement float64

	// Upper bound on comparisons / (n·log2 n) for any pattern.
	MaxRatio float64

	// Patterns considered presorted.
	Presorted []Pattern
}

// DefaultAssertionConfig returns thresholds every input size should meet.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxPresortedPerElement: 1.0,
		MaxRatio:               1.1,
		Presorted:              []Pattern{PatternSorted, PatternReversed, PatternEqual},
	}
}

// AssertSorted verifies that no element of s is greater than its
// successor according to cmp.
func AssertSorted[E any](t testing.TB, s []E, cmp func(a, b E) int) {
	t.Helper()

	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			t.Errorf("not sorted at index %d: %v > %v", i, s[i-1], s[i])
			return
		}
	}
}

// AssertStable verifies that elements cmp reports as equal appear in
// increasing seq order, where seq is each element's original position.
//
// s must already be sorted by cmp.
func AssertStable[E any](t testing.TB, s []E, cmp func(a, b E) int, seq func(E) int) {
	t.Helper()

	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) != 0 {
			continue
		}
		if seq(s[i-1]) > seq(s[i]) {
			t.Errorf("not stable at index %d: equal elements %v and %v swapped (seq %d > %d)",
				i, s[i-1], s[i], seq(s[i-1]), seq(s[i]))
			return
		}
	}
}

// AssertPermutation verifies that after holds exactly the elements of
// before, with the same multiplicities.
func AssertPermutation[E comparable](t testing.TB, before, after []E) {
	t.Helper()

	if len(before) != len(after) {
		t.Fatalf("length changed: %d → %d", len(before), len(after))
	}

	counts := make(map[E]int, len(before))
	for _, e := range before {
		counts[e]++
	}
	for _, e := range after {
		counts[e]--
	}

	var diffs []string
	for e, c := range counts {
		switch {
		case c > 0:
			diffs = append(diffs, fmt.Sprintf("  %v: %d lost", e, c))
		case c < 0:
			diffs = append(diffs, fmt.Sprintf("  %v: %d duplicated", e, -c))
		}
	}
	if len(diffs) > 0 {
		t.Errorf("not a permutation of the input:\n%v", diffs)
	}
}

// AssertAdaptive verifies comparison counts from RunBench: presorted
// patterns must cost O(n), and no pattern may exceed cfg.MaxRatio of
// n·log2 n.
func AssertAdaptive(t testing.TB, results []BenchResult, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, r := range results {
		if r.N < 2 {
			continue
		}

		if containsPattern(cfg.Presorted, r.Pattern) {
			if per := r.ComparisonsPerElement(); per > cfg.MaxPresortedPerElement {
				failures = append(failures, fmt.Sprintf(
					"  %s n=%d: %.3f comparisons/element (max: %.3f)",
					r.Pattern, r.N, per, cfg.MaxPresortedPerElement))
			}
		}

		if ratio := r.Ratio(); ratio > cfg.MaxRatio {
			failures = append(failures, fmt.Sprintf(
				"  %s n=%d: %.3f of n·log2 n (max: %.3f)",
				r.Pattern, r.N, ratio, cfg.MaxRatio))
		}
	}

	if len(failures) > 0 {
		t.Errorf("comparison counts out of bounds:\n%s", failures)
		return
	}

	t.Logf("✓ Adaptive: %d cases within bounds", len(results))
}

func containsPattern(ps []Pattern, p Pattern) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
