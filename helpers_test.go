package timsort

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var errComparator = errors.New("comparator failed")

// intGT is the plain comparator used throughout the tests.
func intGT(a, b int) (bool, error) {
	return a > b, nil
}

// counter wraps a comparator and counts calls to it.
type counter[E any] struct {
	calls int
	gt    greater[E]
}

func (c *counter[E]) greater(a, b E) (bool, error) {
	c.calls++
	return c.gt(a, b)
}

// failAfter returns a comparator that behaves like gt for k calls and
// then fails every time.
func failAfter[E any](k int, gt greater[E]) greater[E] {
	calls := 0
	return func(a, b E) (bool, error) {
		if calls >= k {
			return false, errComparator
		}
		calls++
		return gt(a, b)
	}
}

// panicAfter is like failAfter but panics instead of failing.
func panicAfter[E any](k int, gt greater[E]) greater[E] {
	calls := 0
	return func(a, b E) (bool, error) {
		if calls >= k {
			panic(fmt.Sprintf("comparator panic after %d calls", k))
		}
		calls++
		return gt(a, b)
	}
}

// item is a record sorted on key alone; seq is its original position.
type item struct {
	key int
	seq int
}

func itemCmp(a, b item) int {
	switch {
	case a.key < b.key:
		return -1
	case a.key > b.key:
		return 1
	default:
		return 0
	}
}

func itemGT(a, b item) (bool, error) {
	return a.key > b.key, nil
}

func itemSeq(it item) int { return it.seq }

// cyclicItems returns n items with keys 0..mod-1 repeating.
func cyclicItems(n, mod int) []item {
	s := make([]item, n)
	for i := range s {
		s[i] = item{key: i % mod, seq: i}
	}
	return s
}

// randomItems returns n items with keys in [0, keys).
func randomItems(rng *rand.Rand, n, keys int) []item {
	s := make([]item, n)
	for i := range s {
		s[i] = item{key: rng.Intn(keys), seq: i}
	}
	return s
}

// stableOracle sorts a copy of s with the standard library's stable sort.
func stableOracle(s []item) []item {
	out := make([]item, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
