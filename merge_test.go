package timsort

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

// TestMerge covers the small fixed merges, through both mergeLo and mergeHi.
func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		mid  int
		want []int
	}{
		{"empty", []int{}, 0, []int{}},
		{"single sorted", []int{42, 90}, 1, []int{42, 90}},
		{"single unsorted", []int{90, 42}, 1, []int{42, 90}},
		{"hi unsorted", []int{90, 17, 42}, 1, []int{17, 42, 90}},
		{"lo unsorted", []int{17, 90, 42}, 2, []int{17, 42, 90}},
		{"hi unsorted multiple", []int{21, 32, 91, 17, 20, 40, 80}, 3, []int{17, 20, 21, 32, 40, 80, 91}},
		{"lo unsorted multiple", []int{17, 20, 40, 80, 21, 32, 91}, 4, []int{17, 20, 21, 32, 40, 80, 91}},
		{
			"lo gallop",
			[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			21,
			rangeWithExtra(1, 31, 20),
		},
		{
			"hi gallop",
			[]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30},
			10,
			rangeWithExtra(1, 31, 20),
		},
		{"first run entirely before", []int{1, 2, 3, 4, 5}, 3, []int{1, 2, 3, 4, 5}},
		{"second run entirely before", []int{4, 5, 1, 2, 3}, 2, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := slices.Clone(tt.in)
			if err := merge(s, tt.mid, intGT); err != nil {
				t.Fatalf("merge failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, s); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

// TestMerge_Stable verifies equal keys from the first run stay ahead of
// equal keys from the second, in both merge directions.
func TestMerge_Stable(t *testing.T) {
	for _, split := range []struct{ n1, n2 int }{{10, 40}, {40, 10}, {25, 25}} {
		s := make([]item, 0, split.n1+split.n2)
		for i := 0; i < split.n1; i++ {
			s = append(s, item{key: i / 4, seq: len(s)})
		}
		for i := 0; i < split.n2; i++ {
			s = append(s, item{key: i / 4, seq: len(s)})
		}

		want := stableOracle(s)
		if err := merge(s, split.n1, itemGT); err != nil {
			t.Fatalf("merge failed: %v", err)
		}
		if diff := cmp.Diff(want, s, cmp.AllowUnexported(item{})); diff != "" {
			t.Errorf("%d/%d: unexpected result (-want +got):\n%s", split.n1, split.n2, diff)
		}
	}
}

// TestMerge_GallopMatchesLinear verifies the adaptive merge agrees with a
// plain stable merge on inputs that do and do not trigger galloping.
func TestMerge_GallopMatchesLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// block controls how long same-run stretches are: 1 never gallops,
	// 50 gallops almost immediately.
	for _, block := range []int{1, 3, 8, 20, 50} {
		for _, split := range []struct{ n1, n2 int }{{100, 300}, {300, 100}, {200, 200}, {1, 50}, {50, 1}} {
			s := interleavedRuns(rng, split.n1, split.n2, block)
			want := stableOracle(s)

			c := &counter[item]{gt: itemGT}
			if err := merge(s, split.n1, c.greater); err != nil {
				t.Fatalf("merge failed: %v", err)
			}
			if diff := cmp.Diff(want, s, cmp.AllowUnexported(item{})); diff != "" {
				t.Errorf("block=%d %d/%d: unexpected result (-want +got):\n%s",
					block, split.n1, split.n2, diff)
			}
			t.Logf("block=%d %d/%d: %d comparisons", block, split.n1, split.n2, c.calls)
		}
	}
}

// TestMerge_FailureKeepsElements verifies every element survives a
// comparator failure at any point of the merge.
func TestMerge_FailureKeepsElements(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, split := range []struct{ n1, n2 int }{{30, 90}, {90, 30}} {
		in := interleavedRuns(rng, split.n1, split.n2, 9)

		for k := 0; k < 200; k++ {
			s := slices.Clone(in)
			err := merge(s, split.n1, failAfter(k, itemGT))
			if err != nil && err != errComparator {
				t.Fatalf("unexpected error: %v", err)
			}
			AssertPermutation(t, in, s)
		}
	}
}

// TestMerge_PanicKeepsElements verifies the buffer is drained back while a
// comparator panic unwinds through the merge.
func TestMerge_PanicKeepsElements(t *testing.T) {
	t.Run("first call, lo", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5}
		mustPanic(t, func() {
			_ = merge(s, 3, panicAfter(0, intGT))
		})
		AssertPermutation(t, []int{1, 2, 3, 4, 5}, s)
	})

	t.Run("first call, hi", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5}
		mustPanic(t, func() {
			_ = merge(s, 2, panicAfter(0, intGT))
		})
		AssertPermutation(t, []int{1, 2, 3, 4, 5}, s)
	})

	t.Run("mid merge", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for _, split := range []struct{ n1, n2 int }{{20, 60}, {60, 20}} {
			in := interleavedRuns(rng, split.n1, split.n2, 9)
			for k := 0; k < 100; k += 3 {
				s := slices.Clone(in)
				func() {
					defer func() { _ = recover() }()
					_ = merge(s, split.n1, panicAfter(k, itemGT))
				}()
				AssertPermutation(t, in, s)
			}
		}
	})
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	f()
}

// interleavedRuns builds two sorted runs of n1 and n2 items whose keys
// alternate between the runs in stretches of about block elements.
func interleavedRuns(rng *rand.Rand, n1, n2, block int) []item {
	keys1 := make([]int, 0, n1)
	keys2 := make([]int, 0, n2)
	key := 0
	for len(keys1) < n1 || len(keys2) < n2 {
		stretch := 1 + rng.Intn(2*block)
		first := rng.Intn(2) == 0
		for i := 0; i < stretch; i++ {
			// Occasional repeated keys exercise tie handling.
			if rng.Intn(4) != 0 {
				key++
			}
			if first && len(keys1) < n1 {
				keys1 = append(keys1, key)
			} else if !first && len(keys2) < n2 {
				keys2 = append(keys2, key)
			}
		}
	}

	s := make([]item, 0, n1+n2)
	for _, k := range keys1 {
		s = append(s, item{key: k, seq: len(s)})
	}
	for _, k := range keys2 {
		s = append(s, item{key: k, seq: len(s)})
	}
	return s
}

// rangeWithExtra returns lo..hi-1 with one extra copy of dup.
func rangeWithExtra(lo, hi, dup int) []int {
	var s []int
	for v := lo; v < hi; v++ {
		s = append(s, v)
		if v == dup {
			s = append(s, v)
		}
	}
	return s
}
