package output

import (
	"fmt"
	"io"
	"os"

	"github.com/probelab/browsercheck/internal/metrics"
	"github.com/probelab/browsercheck/internal/probe"
	"github.com/probelab/browsercheck/internal/profiler"
	"github.com/sirupsen/logrus"
)

// Formatter provides clean, human-friendly run output layered over the
// table formatters.
type Formatter struct {
	writer  io.Writer
	colors  *ColorHelper
	results *ResultsFormatter
	summary *SummaryFormatter
	metrics metrics.Collector
	log     logrus.FieldLogger
}

// NewFormatter creates a new output formatter. A nil writer defaults to
// stdout.
func NewFormatter(log logrus.FieldLogger, writer io.Writer, collector metrics.Collector) *Formatter {
	if writer == nil {
		writer = os.Stdout
	}

	renderer := NewRenderer(log)

	return &Formatter{
		writer:  writer,
		colors:  NewColorHelper(),
		results: NewResultsFormatter(log, renderer),
		summary: NewSummaryFormatter(log, renderer),
		metrics: collector,
		log:     log.WithField("component", "output.formatter"),
	}
}

// PrintPhase prints a phase separator.
func (f *Formatter) PrintPhase(phase string) {
	fmt.Fprintf(f.writer, "\n%s\n", f.colors.Header("▸ "+phase))
}

// PrintSuccess prints a green message.
func (f *Formatter) PrintSuccess(message string) {
	fmt.Fprintf(f.writer, "%s\n", f.colors.Success(message))
}

// PrintError prints a red message with error details.
func (f *Formatter) PrintError(message string, err error) {
	if err != nil {
		fmt.Fprintf(f.writer, "%s\n", f.colors.Failure(fmt.Sprintf("%s: %v", message, err)))
		return
	}

	fmt.Fprintf(f.writer, "%s\n", f.colors.Failure(message))
}

// PrintBrowser prints the detected browser descriptor.
func (f *Formatter) PrintBrowser(info profiler.BrowserInfo) {
	line := fmt.Sprintf("%s %s on %s", info.Name, info.Version, info.Platform)

	if info.Mobile {
		line += " (mobile)"
	}

	if info.PWA {
		line += " (installed app)"
	}

	fmt.Fprintf(f.writer, "%s\n", f.colors.Info(line))
}

// PrintResults prints the capability results table.
func (f *Formatter) PrintResults(results []probe.Result) {
	fmt.Fprintln(f.writer, f.results.Format(results))
}

// PrintSummary prints the aggregate summary table.
func (f *Formatter) PrintSummary() {
	fmt.Fprintln(f.writer, f.summary.Format(f.metrics.GetSummary()))
}
