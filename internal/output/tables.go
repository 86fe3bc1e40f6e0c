package output

import (
	"fmt"

	"github.com/probelab/browsercheck/internal/format"
	"github.com/probelab/browsercheck/internal/metrics"
	"github.com/probelab/browsercheck/internal/probe"
	"github.com/sirupsen/logrus"
)

// maxDetailWidth truncates long notes/errors in table cells.
const maxDetailWidth = 60

// ResultsFormatter formats probe results as a table.
type ResultsFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewResultsFormatter creates a new results table formatter.
func NewResultsFormatter(log logrus.FieldLogger, renderer *Renderer) *ResultsFormatter {
	return &ResultsFormatter{
		log:      log.WithField("component", "output.results_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts probe results into a formatted table string.
func (f *ResultsFormatter) Format(results []probe.Result) string {
	if len(results) == 0 {
		return "No probes executed"
	}

	var (
		headers = []string{"Capability", "Status", "Duration", "Details"}
		rows    = make([][]string, 0, len(results))
	)

	for _, result := range results {
		duration := ""
		if result.PerformanceMS > 0 {
			duration = format.Millis(result.PerformanceMS)
		}

		details := result.Notes
		if result.Error != "" {
			if details != "" {
				details += " - "
			}

			details += f.colors.Muted(truncate(result.Error, maxDetailWidth))
		}

		rows = append(rows, []string{
			result.Feature,
			f.colors.FormatSupport(result.Supported),
			duration,
			details,
		})
	}

	return "\n" + f.colors.Header("▸ Capability Results") + "\n\n" + f.renderer.RenderToString(headers, rows)
}

// SummaryFormatter formats the run summary as a table.
type SummaryFormatter struct {
	log      logrus.FieldLogger
	renderer *Renderer
	colors   *ColorHelper
}

// NewSummaryFormatter creates a new summary table formatter.
func NewSummaryFormatter(log logrus.FieldLogger, renderer *Renderer) *SummaryFormatter {
	return &SummaryFormatter{
		log:      log.WithField("component", "output.summary_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts a summary metric into a formatted table string.
func (f *SummaryFormatter) Format(summary metrics.SummaryMetric) string {
	score := format.Percent(summary.Score)

	switch {
	case summary.Score >= 80:
		score = f.colors.Success(score)
	case summary.Score >= 50:
		score = f.colors.Warning(score)
	default:
		score = f.colors.Failure(score)
	}

	var (
		headers = []string{"Probes", "Supported", "Unsupported", "Score", "Duration"}
		rows    = [][]string{{
			fmt.Sprintf("%d", summary.TotalProbes),
			fmt.Sprintf("%d", summary.Supported),
			fmt.Sprintf("%d", summary.Unsupported),
			score,
			format.Duration(summary.TotalDuration),
		}}
	)

	return "\n" + f.colors.Header("▸ Summary") + "\n\n" + f.renderer.RenderToString(headers, rows)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}

	return s[:width-3] + "..."
}
