package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/alexshd/timsort"
)

var reportColumnHeaders = []string{
	"pattern",
	"n",
	"comparisons",
	"cmp/elem",
	"ratio",
	"p50",
	"p99",
	"tail",
	"throughput",
}

// writeReport prints one row per result, in the order given.
func writeReport(w io.Writer, results []timsort.BenchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, h := range reportColumnHeaders {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)

	for _, r := range results {
		stats := timsort.CalculateStatistics(r)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%.3f\t%v\t%v\t%.2f\t%s\n",
			r.Pattern,
			humanize.Comma(int64(r.N)),
			humanize.Comma(r.Comparisons),
			r.ComparisonsPerElement(),
			r.Ratio(),
			stats.P50,
			stats.P99,
			stats.TailRatio,
			humanize.SIWithDigits(r.Throughput(), 2, "elem/s"),
		)
	}
	return tw.Flush()
}
