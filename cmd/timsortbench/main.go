/*
Timsortbench measures the comparison counts and running time of the timsort
package over generated input patterns.

Usage:

	timsortbench run [flags]
	timsortbench patterns

The run flags are:

	-c, --config PATH
		Load settings from the given YAML file. Flags given on the command
		line override values from the file.

	--sizes N,N,...
		Input lengths to sort.

	--patterns NAME,NAME,...
		Input shapes to sort. See "timsortbench patterns".

	--rounds N
		Sorts per case, each on freshly generated input.

	--workers N
		Cases measured at once.

	--seed S
		Base random seed.

	--log-level LEVEL
		One of debug, info, warn or error.

Timsortbench exits with status 0 on success and 1 on any error.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// execute runs the command line in args and returns the process exit code.
func execute(ctx context.Context, args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "ERROR: %s\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(root.ErrOrStderr(), "HINT: %s\n", hint)
		}
		return exitError
	}
	return exitSuccess
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "timsortbench",
		Short: "measures timsort over generated inputs",
		Long: `
	Sorts generated inputs of several shapes and sizes, and reports how many
	comparisons and how much time each case took.
	`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newPatternsCmd())
	return root
}
