// Command clocktree synthesizes a clock distribution tree from an ISPD
// benchmark file and writes the synthesized tree to an output file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/clocktree/clocktree"
)

func newRootCommand() *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "clocktree",
		Short: "Synthesize a zero-skew clock distribution tree from an ISPD benchmark file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			cfg := clocktree.NewConfig(clocktree.WithLogger(logger))

			return clocktree.Run(cfg, inputPath, outputPath)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "input file to read from, provided by ISPD 2009")
	cmd.Flags().StringVar(&outputPath, "output", "", "file to write output to")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
