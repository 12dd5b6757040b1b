package cliapp

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a logger writing to w at the given level, tagged with a
// fresh run ID (google/uuid) so log lines from concurrent or repeated
// invocations can be told apart. This is debug/progress chatter only
// (enabled via -v); it is never where the suite's timing lines go. Grounded
// on matzehuels-stacktower's internal/cli.newLogger.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	return logger.With("run", uuid.NewString())
}

// progress times a single phase ("Build Time", "Directing Time", ...).
// done prints the elapsed duration on w in the suite's plain PrintTime
// format (original_source/src/builder.h: label left-padded to 21 columns,
// seconds to 5 decimals), and separately logs a debug line so -v output
// can tell phases apart.
type progress struct {
	logger *log.Logger
	w      io.Writer
	label  string
	start  time.Time
}

func startProgress(l *log.Logger, w io.Writer, label string) *progress {
	return &progress{logger: l, w: w, label: label, start: time.Now()}
}

func (p *progress) done() time.Duration {
	elapsed := time.Since(p.start)
	fmt.Fprintf(p.w, "%-21s%3.5f\n", p.label+":", elapsed.Seconds())
	p.logger.Debugf("%s took %s", p.label, elapsed.Round(time.Microsecond))
	return elapsed
}
