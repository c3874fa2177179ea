package timsort

// direction selects the end of the run a galloping search probes from.
// Callers pick the end nearest the expected boundary.
type direction int

const (
	forward direction = iota
	reverse
)

func (d direction) String() string {
	if d == reverse {
		return "reverse"
	}
	return "forward"
}

// gallopLeft returns the index at which key belongs in the sorted run,
// before any elements equal to it.
func gallopLeft[E any](key E, run []E, dir direction, gt greater[E]) (int, error) {
	// First element not less than key.
	return gallop(run, dir, func(x E) (bool, error) {
		g, err := gt(key, x)
		return !g, err
	})
}

// gallopRight returns the index at which key belongs in the sorted run,
// after any elements equal to it.
func gallopRight[E any](key E, run []E, dir direction, gt greater[E]) (int, error) {
	// First element greater than key.
	return gallop(run, dir, func(x E) (bool, error) {
		return gt(x, key)
	})
}

// gallop returns the first index of run at which past reports true, given
// that past is false for a prefix of run and true for the rest.
//
// Probes are made at offsets 1, 3, 7, 15, ... from the chosen end until
// past flips, then the bracket between the last two probes is bisected.
// The cost is O(log k) calls when the boundary is k elements from that end.
func gallop[E any](run []E, dir direction, past func(x E) (bool, error)) (int, error) {
	n := len(run)
	lo, hi := 0, n // boundary lies in [lo, hi]

	for ofs := 1; ofs <= n; ofs = ofs<<1 + 1 {
		idx := ofs - 1
		if dir == reverse {
			idx = n - ofs
		}

		p, err := past(run[idx])
		if err != nil {
			return 0, err
		}

		if dir == forward {
			if p {
				hi = idx
				break
			}
			lo = idx + 1
		} else {
			if !p {
				lo = idx + 1
				break
			}
			hi = idx
		}

		if ofs > n>>1 {
			break
		}
	}

	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		p, err := past(run[m])
		if err != nil {
			return 0, err
		}
		if p {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return lo, nil
}
