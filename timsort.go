package timsort

import "golang.org/x/exp/constraints"

// greater is the comparator capability every component consumes. It
// reports whether a is strictly greater than b, or fails.
type greater[E any] func(a, b E) (bool, error)

// fromCmp adapts a three-way comparator.
func fromCmp[E any](cmp func(a, b E) (int, error)) greater[E] {
	return func(a, b E) (bool, error) {
		c, err := cmp(a, b)
		if err != nil {
			return false, err
		}
		return c > 0, nil
	}
}

// infallible adapts a comparator that cannot fail.
func infallible[E any](isGreater func(a, b E) bool) greater[E] {
	return func(a, b E) (bool, error) {
		return isGreater(a, b), nil
	}
}

// Sort sorts s in ascending order. The sort is stable.
//
// Floating-point NaNs never compare greater than anything, so a slice
// containing NaNs is sorted only up to where they happen to land.
func Sort[E constraints.Ordered](s []E) {
	SortByGreater(s, func(a, b E) bool { return a > b })
}

// SortFunc sorts s in ascending order as determined by cmp, which must
// return a negative number when a < b, a positive number when a > b and
// zero when a == b. The sort is stable: elements cmp reports as equal
// keep their original relative order.
//
// Example:
//
//	timsort.SortFunc(people, func(a, b Person) int {
//	    return strings.Compare(a.Name, b.Name)
//	})
func SortFunc[E any](s []E, cmp func(a, b E) int) {
	SortByGreater(s, func(a, b E) bool { return cmp(a, b) > 0 })
}

// SortByGreater sorts s in ascending order using isGreater, which reports
// whether a is strictly greater than b. The sort is stable.
func SortByGreater[E any](s []E, isGreater func(a, b E) bool) {
	// The comparator never fails, so neither can the sort.
	_ = sortSlice(s, infallible(isGreater))
}

// TrySortFunc sorts s in ascending order using a three-way comparator that
// may fail. The first error returned by cmp aborts the sort and is
// returned unchanged.
//
// On error s holds exactly the elements it held before the call, in an
// unspecified order. On success s is sorted and the sort is stable.
func TrySortFunc[E any](s []E, cmp func(a, b E) (int, error)) error {
	return sortSlice(s, fromCmp(cmp))
}

// TrySortByGreater is like TrySortFunc, but the comparator reports whether
// a is strictly greater than b.
func TrySortByGreater[E any](s []E, isGreater func(a, b E) (bool, error)) error {
	return sortSlice(s, greater[E](isGreater))
}

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[E constraints.Ordered](s []E) bool {
	for i := len(s) - 1; i > 0; i-- {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether s is sorted in ascending order according
// to cmp.
func IsSortedFunc[E any](s []E, cmp func(a, b E) int) bool {
	for i := len(s) - 1; i > 0; i-- {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
