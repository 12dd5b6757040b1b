// Command pivotscale-sweep counts k-cliques for every size 1..K in a large
// undirected graph.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pivotscale/pivotscale/internal/cliapp"
	"github.com/pivotscale/pivotscale/pkg/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts cliapp.Options
	var verbose bool

	root := &cobra.Command{
		Use:   "pivotscale-sweep",
		Short: "Count k-cliques for all sizes 1..K in an undirected graph via pivot-based DAG enumeration",
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cliapp.RegisterFlags(root, &opts, true)

	exitCode := 0
	root.RunE = func(cmd *cobra.Command, args []string) error {
		logger := cliapp.NewLogger(os.Stderr, verbose)

		cfg := config.Default()
		if opts.ConfigPath != "" {
			loaded, err := config.Load(opts.ConfigPath)
			if err != nil {
				exitCode = -1
				return err
			}
			cfg = loaded
		}

		// -m is this binary's whole purpose: always sweep, regardless of
		// whether the caller also passed it explicitly. When
		// -c wasn't given explicitly, K is left to cliapp.Run's fallback
		// to the DAG's max out-degree + 1.
		opts.Sweep = true
		if !cmd.Flags().Changed("clique-size") {
			opts.CliqueSize = 0
		}

		result, err := cliapp.Run(&opts, cfg, logger, os.Stdout)
		if err != nil {
			switch {
			case errors.Is(err, cliapp.ErrUsage):
				exitCode = -1
				fmt.Fprintln(os.Stdout, err)
			case errors.Is(err, cliapp.ErrDirectedInput):
				exitCode = -2
			default:
				exitCode = -1
			}
			return err
		}

		cliapp.PrintSweep(os.Stdout, result.Sweep, result.MaxK)
		return nil
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		if exitCode == 0 {
			exitCode = -1
		}
		return exitCode
	}
	return 0
}
