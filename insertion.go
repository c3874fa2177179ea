package timsort

// binaryInsertionSort sorts s, given that s[:start] is already sorted.
//
// Each element is placed after every element it does not exceed, found by
// binary search over the sorted prefix, and the gap is closed with a
// single shift. The search reads only; the shift happens after it
// succeeds, so a failing comparator leaves s a permutation of its input.
func binaryInsertionSort[E any](s []E, start int, gt greater[E]) error {
	if start < 1 {
		start = 1
	}
	for i := start; i < len(s); i++ {
		pivot := s[i]

		// Rightmost slot in s[:i] whose left neighbour is not greater
		// than pivot.
		lo, hi := 0, i
		for lo < hi {
			m := int(uint(lo+hi) >> 1)
			g, err := gt(s[m], pivot)
			if err != nil {
				return err
			}
			if g {
				hi = m
			} else {
				lo = m + 1
			}
		}

		if lo < i {
			copy(s[lo+1:i+1], s[lo:i])
			s[lo] = pivot
		}
	}
	return nil
}
