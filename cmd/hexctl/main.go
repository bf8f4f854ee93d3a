package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hexctl",
		Short:         "Hex grid coordinate and map tool",
		Long:          `Convert between hex coordinate systems, enumerate rings and ranges, and inspect tile map snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "Print results as JSON")

	root.AddCommand(
		newConvertCmd(),
		newRingCmd(),
		newRangeCmd(),
		newDistanceCmd(),
		newDumpCmd(),
		newSnapshotCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
