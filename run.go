package timsort

// findRun returns the length of the run at the start of s and whether it
// is descending.
//
// An ascending run is non-decreasing. A descending run must be strictly
// decreasing: reversing a span that holds equal neighbours would swap
// them and break stability.
func findRun[E any](s []E, gt greater[E]) (int, bool, error) {
	if len(s) < 2 {
		return len(s), false, nil
	}

	desc, err := gt(s[0], s[1])
	if err != nil {
		return 0, false, err
	}

	n := 2
	for n < len(s) {
		g, err := gt(s[n-1], s[n])
		if err != nil {
			return 0, false, err
		}
		if g != desc {
			break
		}
		n++
	}
	return n, desc, nil
}

// countRunAndMakeAscending finds the run at the start of s and reverses it
// in place if it was descending. The reversal only happens once the whole
// run is known, so a failing comparator leaves s untouched.
func countRunAndMakeAscending[E any](s []E, gt greater[E]) (int, error) {
	n, desc, err := findRun(s, gt)
	if err != nil {
		return 0, err
	}
	if desc {
		reverseRun(s[:n])
	}
	return n, nil
}

func reverseRun[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
