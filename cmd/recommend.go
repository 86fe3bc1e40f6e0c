package cmd

import (
	"fmt"

	"github.com/probelab/browsercheck/internal/report"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print recommendations derived from the recorded history",
	Long: `Scan every persisted suite for failed capabilities and print one
human-readable recommendation per recognized failure category, plus
performance and browser-specific advisories.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		suites, err := loadHistory()
		if err != nil {
			return err
		}

		if len(suites) == 0 {
			fmt.Println("No suites recorded yet. Run 'browsercheck run --save' first.")
			return nil
		}

		for _, recommendation := range report.Recommendations(suites) {
			fmt.Printf("• %s\n", recommendation)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}
