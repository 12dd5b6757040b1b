// Package cliapp centralizes the option grammar, logging, and
// build-directionalize-count pipeline shared by cmd/pivotscale and
// cmd/pivotscale-sweep.
// Grounded on matzehuels-stacktower's internal/cli package: a cobra root
// command, a charmbracelet/log logger attached per invocation, flags
// registered once and read back into a plain options struct.
package cliapp

import "github.com/spf13/cobra"

// Options holds the parsed CLI grammar.
type Options struct {
	File           string
	KroneckerScale int
	UniformScale   int
	AvgDegree      int
	Symmetrize     bool
	CliqueSize     int
	Sweep          bool
	ConfigPath     string
}

// RegisterFlags attaches flag grammar to cmd, writing parsed
// values into opts. sweepBinary controls whether -m is meaningful (it is a
// no-op constant true in the sweep binary and constant false in the
// single-k binary "-m ... only meaningful in the sweep
// binary").
func RegisterFlags(cmd *cobra.Command, opts *Options, sweepBinary bool) {
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "load graph from file (.el/.wel)")
	cmd.Flags().IntVarP(&opts.KroneckerScale, "kronecker-scale", "g", 0, "generate a Kronecker graph of 2^scale vertices")
	cmd.Flags().IntVarP(&opts.UniformScale, "uniform-scale", "u", 0, "generate a uniform random graph of 2^scale vertices")
	cmd.Flags().IntVarP(&opts.AvgDegree, "degree", "k", 16, "average degree for a synthetic graph")
	cmd.Flags().BoolVarP(&opts.Symmetrize, "symmetrize", "s", false, "symmetrize input (implicit for -g/-u)")
	cmd.Flags().IntVarP(&opts.CliqueSize, "clique-size", "c", 3, "clique size")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to a TOML config file overriding the ordering heuristic's defaults")
	if sweepBinary {
		cmd.Flags().BoolVarP(&opts.Sweep, "sweep", "m", false, "count all sizes 1..clique-size instead of just clique-size")
	}
}

// Source identifies which of -f/-g/-u the caller requested.
type Source int

const (
	// SourceNone means no input source flag was given — a CLI usage error.
	SourceNone Source = iota
	SourceFile
	SourceKronecker
	SourceUniform
)

// ResolveSource determines which input source opts selects
// point 1 ("parse failure or missing -f/-g/-u").
func (o *Options) ResolveSource() Source {
	switch {
	case o.File != "":
		return SourceFile
	case o.KroneckerScale > 0:
		return SourceKronecker
	case o.UniformScale > 0:
		return SourceUniform
	default:
		return SourceNone
	}
}
