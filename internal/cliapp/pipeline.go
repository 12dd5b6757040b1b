package cliapp

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pivotscale/pivotscale/pkg/builder"
	"github.com/pivotscale/pivotscale/pkg/combinatorics"
	"github.com/pivotscale/pivotscale/pkg/config"
	"github.com/pivotscale/pivotscale/pkg/graph"
	"github.com/pivotscale/pivotscale/pkg/graphio"
	"github.com/pivotscale/pivotscale/pkg/ordering"
	"github.com/pivotscale/pivotscale/pkg/pivot"
)

// ErrUsage signals a CLI usage error; cmd/* mains map
// it to exit code -1.
var ErrUsage = errors.New("cliapp: usage error")

// ErrDirectedInput signals that the loaded graph is directed where an
// undirected one is required; cmd/* mains map it to
// exit code -2.
var ErrDirectedInput = errors.New("cliapp: input graph is directed")

// Result holds the outcome of a pivotscale run. Exactly one of Single or
// Sweep is populated, mirroring opts.Sweep.
type Result struct {
	Single combinatorics.Count
	Sweep  []combinatorics.Count
	MaxK   int
}

// Run executes the shared build -> directionalize -> count pipeline and
// returns either a single count or a sweep, according to opts.Sweep. The
// four phase timing lines (Build/Directing/Counting/Total Time) are
// written to stdout in the suite's plain format, ahead of the count table
// PrintSingle/PrintSweep print afterward; logger only receives -v debug
// chatter.
func Run(opts *Options, cfg *config.Config, logger *log.Logger, stdout io.Writer) (*Result, error) {
	switch opts.ResolveSource() {
	case SourceNone:
		return nil, fmt.Errorf("%w: one of -f, -g, -u is required", ErrUsage)
	}
	if opts.CliqueSize < 1 && !opts.Sweep {
		return nil, fmt.Errorf("%w: clique size (-c) must be >= 1", ErrUsage)
	}

	numWorkers := cfg.ResolvedWorkers()
	runStart := time.Now()

	buildStart := startProgress(logger, stdout, "Build Time")
	g, err := buildGraph(opts)
	if err != nil {
		return nil, err
	}
	buildStart.done()
	logger.Debugf("loaded graph: %d nodes, %d directed edges", g.NumNodes(), g.NumEdgesDirected())

	if g.Directed() {
		return nil, fmt.Errorf("%w: clique counting requires an undirected input graph", ErrDirectedInput)
	}

	directStart := startProgress(logger, stdout, "Directing Time")
	heuristic := ordering.HeuristicParams{
		LargeNThreshold: cfg.Ordering.LargeNThreshold,
		ParamA:          cfg.Ordering.ParamA,
		ParamB:          cfg.Ordering.ParamB,
	}
	dag := builder.Directionalize(g, builder.Options{
		Strategy:   builder.StrategyAuto,
		Epsilon:    cfg.Ordering.Epsilon,
		NumWorkers: numWorkers,
		Heuristic:  heuristic,
	})
	directStart.done()

	countStart := startProgress(logger, stdout, "Counting Time")
	result := &Result{}
	if opts.Sweep {
		maxK := opts.CliqueSize
		if maxK < 1 {
			maxK = pivot.DefaultSweepK(dag)
		}
		result.MaxK = maxK
		result.Sweep = pivot.Sweep(dag, maxK, numWorkers)
	} else {
		result.MaxK = opts.CliqueSize
		result.Single = pivot.Count(dag, opts.CliqueSize, numWorkers)
	}
	countStart.done()
	fmt.Fprintf(stdout, "%-21s%3.5f\n", "Total Time:", time.Since(runStart).Seconds())

	return result, nil
}

// buildGraph dispatches to pkg/graphio according to which of -f/-g/-u was
// given.
func buildGraph(opts *Options) (*graph.Graph, error) {
	switch opts.ResolveSource() {
	case SourceFile:
		return graphio.ReadEdgeList(opts.File, opts.Symmetrize)
	case SourceKronecker:
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return graphio.GenerateKronecker(opts.KroneckerScale, opts.AvgDegree, rng), nil
	case SourceUniform:
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return graphio.GenerateUniform(opts.UniformScale, opts.AvgDegree, rng), nil
	default:
		return nil, fmt.Errorf("%w: one of -f, -g, -u is required", ErrUsage)
	}
}
