package timsort

// minMerge is the input length below which the run stack is skipped and
// the whole slice is insertion sorted.
const minMerge = 64

// maxPending bounds the run stack. The stack invariant makes run lengths
// grow at least as fast as the Fibonacci numbers, so 85 entries cover any
// slice that fits in memory.
const maxPending = 85

// minRunLength returns the minimum run length for a slice of length n.
//
// n is halved until it is below minMerge; if any bit shifted out was set
// the result is rounded up. n/minRunLength is then a power of two or just
// under one, which keeps the final merges balanced.
func minRunLength(n int) int {
	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// run is a sorted span s[base : base+length] of the slice being sorted.
type run struct {
	base   int
	length int
}

// sortState is the state of one top-level sort call.
type sortState[E any] struct {
	s  []E
	gt greater[E]

	// runs are pending, not yet merged runs, left to right. After every
	// push, for each i:
	//   runs[i-2].length > runs[i-1].length + runs[i].length
	//   runs[i-1].length > runs[i].length
	runs []run
}

func sortSlice[E any](s []E, gt greater[E]) error {
	n := len(s)
	if n < 2 {
		return nil
	}

	if n < minMerge {
		initRun, err := countRunAndMakeAscending(s, gt)
		if err != nil {
			return err
		}
		return binaryInsertionSort(s, initRun, gt)
	}

	st := &sortState[E]{
		s:    s,
		gt:   gt,
		runs: make([]run, 0, maxPending),
	}
	return st.sort()
}

func (st *sortState[E]) sort() error {
	n := len(st.s)
	minRun := minRunLength(n)

	for lo := 0; lo < n; {
		rest := st.s[lo:]

		runLen, err := countRunAndMakeAscending(rest, st.gt)
		if err != nil {
			return err
		}

		// Extend short runs to min(minRun, remaining).
		if runLen < minRun {
			force := minRun
			if force > len(rest) {
				force = len(rest)
			}
			if err := binaryInsertionSort(rest[:force], runLen, st.gt); err != nil {
				return err
			}
			runLen = force
		}

		st.runs = append(st.runs, run{base: lo, length: runLen})
		if err := st.mergeCollapse(); err != nil {
			return err
		}
		lo += runLen
	}

	return st.mergeForceCollapse()
}

// mergeCollapse merges adjacent runs until the stack invariant holds
// again. The check looks one entry deeper than the textbook version so
// the invariant holds for the whole stack, not just its top.
func (st *sortState[E]) mergeCollapse() error {
	for len(st.runs) > 1 {
		r := st.runs
		n := len(r) - 2
		if (n > 0 && r[n-1].length <= r[n].length+r[n+1].length) ||
			(n > 1 && r[n-2].length <= r[n-1].length+r[n].length) {
			// Merge the smaller of the outer two with the middle one.
			if r[n-1].length < r[n+1].length {
				n--
			}
		} else if r[n].length > r[n+1].length {
			break
		}
		if err := st.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeForceCollapse merges all remaining runs into one.
func (st *sortState[E]) mergeForceCollapse() error {
	for len(st.runs) > 1 {
		r := st.runs
		n := len(r) - 2
		if n > 0 && r[n-1].length < r[n+1].length {
			n--
		}
		if err := st.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeAt merges runs i and i+1, which must be adjacent on the stack.
func (st *sortState[E]) mergeAt(i int) error {
	r1, r2 := st.runs[i], st.runs[i+1]

	st.runs[i].length = r1.length + r2.length
	st.runs = append(st.runs[:i+1], st.runs[i+2:]...)

	return merge(st.s[r1.base:r2.base+r2.length], r1.length, st.gt)
}
