// Package report renders suites into exportable documents and aggregate
// recommendations.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/probelab/browsercheck/internal/format"
	"github.com/probelab/browsercheck/internal/suite"
)

// Markdown renders a suite into a deterministic markdown document: a header
// block followed by one section per result. Calling it twice on the same
// suite produces byte-identical output.
func Markdown(s *suite.Suite) string {
	var b strings.Builder

	b.WriteString("# Device Compatibility Report\n\n")
	fmt.Fprintf(&b, "- **Browser**: %s %s\n", s.Browser.Name, s.Browser.Version)
	fmt.Fprintf(&b, "- **Platform**: %s\n", s.Browser.Platform)
	fmt.Fprintf(&b, "- **Mobile**: %s\n", yesNo(s.Browser.Mobile))
	fmt.Fprintf(&b, "- **Installed as app**: %s\n", yesNo(s.Browser.PWA))
	fmt.Fprintf(&b, "- **Recorded**: %s\n", s.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Overall score**: %s\n", format.Percent(s.OverallScore))

	for _, r := range s.Results {
		glyph := "❌"
		if r.Supported {
			glyph = "✅"
		}

		fmt.Fprintf(&b, "\n## %s %s\n\n", glyph, r.Feature)
		fmt.Fprintf(&b, "- Supported: %s\n", yesNo(r.Supported))

		if r.PerformanceMS > 0 {
			fmt.Fprintf(&b, "- Performance: %s\n", format.Millis(r.PerformanceMS))
		}

		if r.Notes != "" {
			fmt.Fprintf(&b, "- Notes: %s\n", r.Notes)
		}

		if r.Error != "" {
			fmt.Fprintf(&b, "- Error: %s\n", r.Error)
		}
	}

	return b.String()
}

// JSON renders a suite as indented JSON, the direct serialization used for
// downloads and clipboard export.
func JSON(s *suite.Suite) (string, error) {
	encoded, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding suite: %w", err)
	}

	return string(encoded), nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
