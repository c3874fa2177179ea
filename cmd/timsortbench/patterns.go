package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/timsort"
)

var patternDescriptions = map[timsort.Pattern]string{
	timsort.PatternRandom:          "uniformly random values",
	timsort.PatternSorted:          "already ascending",
	timsort.PatternReversed:        "strictly descending",
	timsort.PatternFewUnique:       "10 distinct values, shuffled",
	timsort.PatternEqual:           "every element the same",
	timsort.PatternPartiallySorted: "every other n/100 chunk sorted",
	timsort.PatternSawtooth:        "interleaved ascending stretches",
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "lists the input patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range timsort.Patterns() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", p, patternDescriptions[p])
			}
			return nil
		},
	}
}
