// Command pivotscale counts k-cliques at a single size in a large
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
		Use:   "pivotscale",
		Short: "Count k-cliques in an undirected graph via pivot-based DAG enumeration",
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cliapp.RegisterFlags(root, &opts, false)

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

		cliapp.PrintSingle(os.Stdout, result.MaxK, result.Single)
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
