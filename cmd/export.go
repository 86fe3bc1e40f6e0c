package cmd

import (
	"fmt"
	"os"

	"github.com/probelab/browsercheck/internal/report"
	"github.com/probelab/browsercheck/internal/suite"
	"github.com/spf13/cobra"
)

const (
	exportFormatMarkdown = "markdown"
	exportFormatJSON     = "json"
)

var (
	exportFormat string
	exportIndex  int
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a persisted suite as markdown or JSON",
	Long: `Export one suite from the history store.

--index selects which suite, counting from the newest (0). The markdown
format matches the shareable report; JSON is the direct serialization of
the suite record.

Examples:
  browsercheck export
  browsercheck export --format json --index 2 --out suite.json`,
	RunE: func(_ *cobra.Command, _ []string) error {
		suites, err := loadHistory()
		if err != nil {
			return err
		}

		if len(suites) == 0 {
			return fmt.Errorf("no suites recorded yet; run 'browsercheck run --save' first")
		}

		if exportIndex < 0 || exportIndex >= len(suites) {
			return fmt.Errorf("index %d out of range (history holds %d suites)", exportIndex, len(suites))
		}

		selected := suites[exportIndex]

		document, err := renderSuite(selected, exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" {
			fmt.Println(document)
			return nil
		}

		if err := os.WriteFile(exportOut, []byte(document), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}

		fmt.Printf("Exported suite %s to %s\n", selected.ID, exportOut)

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", exportFormatMarkdown, "Export format: markdown or json")
	exportCmd.Flags().IntVar(&exportIndex, "index", 0, "Suite to export, 0 being the newest")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// renderSuite renders one suite in the requested export format. Shared by
// the export command and the interactive export action.
func renderSuite(s *suite.Suite, formatName string) (string, error) {
	switch formatName {
	case exportFormatJSON:
		return report.JSON(s)
	case exportFormatMarkdown:
		return report.Markdown(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q (want markdown or json)", formatName)
	}
}
