// Package timsort provides a stable, adaptive, in-place sort for slices
// whose comparator may fail.
//
// # Overview
//
// timsort finds the naturally ordered stretches (runs) already present in
// the input and merges them. It makes O(n) comparisons on sorted or nearly
// sorted input and O(n log n) in the worst case, and it never allocates
// more than half the input as scratch space.
//
// Comparators come in two flavours: a three-way compare, or an
// "is greater" predicate. Either may return an error:
//
//	err := timsort.TrySortFunc(rows, func(a, b Row) (int, error) {
//	    if a.Key == nil || b.Key == nil {
//	        return 0, errMissingKey
//	    }
//	    return strings.Compare(*a.Key, *b.Key), nil
//	})
//	if err != nil {
//	    // rows still holds every original element, in some order.
//	}
//
// The first error aborts the sort and is returned as is. Whatever happens,
// including a comparator panic, the slice ends up holding exactly the
// elements it started with. No element is lost or duplicated.
//
// # Algorithm
//
// The components, leaves first:
//
//   - Run detection: measure the run at the current position. Descending
//     runs must be strictly descending and are reversed in place.
//   - Binary insertion sort: extend short runs to a minimum length, or sort
//     inputs shorter than 64 elements outright.
//   - Galloping search: exponential probing followed by binary search,
//     from whichever end of a run the boundary is expected near.
//   - Merge: merge two adjacent runs through a buffer the size of the
//     smaller one, switching to galloping once one side wins 7 times in a
//     row.
//   - Run stack: pending runs are kept so that each is longer than the
//     next two combined, which bounds total merge work to O(n log n).
//
// # Measuring
//
// RunBench counts comparisons over generated input patterns, and the
// Assert* helpers check sortedness, stability and permutation in tests:
//
//	results, err := timsort.RunBench(ctx, timsort.DefaultBenchConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Printf("%-16s n=%-6d %.2f cmp/elem\n",
//	        r.Pattern, r.N, r.ComparisonsPerElement())
//	}
//
// The sort is single-threaded and synchronous. The slice must not be
// touched by other goroutines while a sort is in progress.
package timsort
