package timsort

// minGallop is the number of consecutive wins by one run after which the
// merge switches from one-at-a-time comparison to galloping.
const minGallop = 7

// merge stably merges the sorted runs s[:mid] and s[mid:] in place.
//
// The window is trimmed first: elements of the first run that precede the
// whole second run, and elements of the second run that follow the whole
// first run, are already in their final place. The shorter of the two
// remaining runs is then copied to a scratch buffer and merged from the
// matching end.
//
// If gt fails, or panics, the error is returned (or the panic continues)
// with s still holding exactly its original elements.
func merge[E any](s []E, mid int, gt greater[E]) error {
	if mid <= 0 || mid >= len(s) {
		return nil
	}

	// Elements of the second run at or beyond the first run's last
	// element stay put.
	n2, err := gallopLeft(s[mid-1], s[mid:], reverse, gt)
	if err != nil {
		return err
	}
	if n2 == 0 {
		return nil
	}

	// Elements of the first run not greater than the second run's first
	// element stay put.
	k, err := gallopRight(s[mid], s[:mid], forward, gt)
	if err != nil {
		return err
	}
	n1 := mid - k
	if n1 == 0 {
		return nil
	}

	window := s[k : mid+n2]
	if n1 <= n2 {
		return mergeLo(window, n1, gt)
	}
	return mergeHi(window, n1, gt)
}

// mergeLo merges s[:mid] and s[mid:] front to back, buffering the first
// run. It is used when the first run is the shorter one.
//
// Cursors: i indexes the buffer, j the second run and d the destination.
// The unfilled slots are always s[d:j], exactly len(buf)-i of them, which
// is what lets the deferred drain restore every buffered element.
func mergeLo[E any](s []E, mid int, gt greater[E]) error {
	buf := make([]E, mid)
	copy(buf, s[:mid])

	i, j, d := 0, mid, 0
	defer func() {
		copy(s[d:], buf[i:])
		clear(buf)
	}()

	wins1, wins2 := 0, 0
	for i < mid && j < len(s) {
		if wins1 < minGallop && wins2 < minGallop {
			g, err := gt(buf[i], s[j])
			if err != nil {
				return err
			}
			if g {
				s[d] = s[j]
				j++
				wins2++
				wins1 = 0
			} else {
				s[d] = buf[i]
				i++
				wins1++
				wins2 = 0
			}
			d++
			continue
		}

		// Second-run elements strictly less than the buffered head.
		c2, err := gallopLeft(buf[i], s[j:], forward, gt)
		if err != nil {
			return err
		}
		copy(s[d:], s[j:j+c2])
		d += c2
		j += c2
		if j == len(s) {
			break
		}

		// Buffered elements not greater than the second run's head.
		c1, err := gallopRight(s[j], buf[i:], forward, gt)
		if err != nil {
			return err
		}
		copy(s[d:], buf[i:i+c1])
		d += c1
		i += c1

		wins1, wins2 = c1, c2
		if wins1 < minGallop && wins2 < minGallop {
			wins1, wins2 = 0, 0
		}
	}
	return nil
}

// mergeHi merges s[:mid] and s[mid:] back to front, buffering the second
// run. It is used when the second run is the shorter one.
//
// Cursors count what is left rather than pointing at it: the first run
// still occupies s[:a], the buffer still holds buf[:b], and the merged
// tail is s[a+b:]. The unfilled slots are s[a:a+b], so the drain copies
// buf[:b] there. No cursor ever goes negative.
func mergeHi[E any](s []E, mid int, gt greater[E]) error {
	buf := make([]E, len(s)-mid)
	copy(buf, s[mid:])

	a, b := mid, len(buf)
	defer func() {
		copy(s[a:], buf[:b])
		clear(buf)
	}()

	wins1, wins2 := 0, 0
	for a > 0 && b > 0 {
		if wins1 < minGallop && wins2 < minGallop {
			g, err := gt(s[a-1], buf[b-1])
			if err != nil {
				return err
			}
			if g {
				s[a+b-1] = s[a-1]
				a--
				wins1++
				wins2 = 0
			} else {
				s[a+b-1] = buf[b-1]
				b--
				wins2++
				wins1 = 0
			}
			continue
		}

		// First-run elements strictly greater than the buffered tail.
		k, err := gallopRight(buf[b-1], s[:a], reverse, gt)
		if err != nil {
			return err
		}
		c1 := a - k
		copy(s[k+b:a+b], s[k:a])
		a = k
		if a == 0 {
			break
		}

		// Buffered elements not less than the first run's tail.
		k, err = gallopLeft(s[a-1], buf[:b], reverse, gt)
		if err != nil {
			return err
		}
		c2 := b - k
		copy(s[a+k:a+b], buf[k:b])
		b = k

		wins1, wins2 = c1, c2
		if wins1 < minGallop && wins2 < minGallop {
			wins1, wins2 = 0, 0
		}
	}
	return nil
}
