package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/probelab/browsercheck/internal/config"
	"github.com/probelab/browsercheck/internal/format"
	"github.com/probelab/browsercheck/internal/output"
	"github.com/probelab/browsercheck/internal/store"
	"github.com/probelab/browsercheck/internal/suite"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List persisted test suites, newest first",
	Long: `List every suite in the local history store, sorted by timestamp
descending. Corrupted entries are skipped with a warning and never block
the rest of the history.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		suites, err := loadHistory()
		if err != nil {
			return err
		}

		if len(suites) == 0 {
			fmt.Println("No suites recorded yet. Run 'browsercheck run --save' first.")
			return nil
		}

		output.NewRenderer(Logger).RenderToWriter(os.Stdout, historyHeaders, historyRows(suites),
			output.WithAlignment(tablewriter.ALIGN_LEFT))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

// historyHeaders are the columns of the history table.
var historyHeaders = []string{"#", "Recorded", "Browser", "Probes", "Score"}

// historyRows converts loaded suites into table rows. Index 0 is the newest
// suite, matching the export command's --index numbering.
func historyRows(suites []*suite.Suite) [][]string {
	rows := make([][]string, 0, len(suites))

	for i, s := range suites {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			s.Timestamp.Local().Format(time.RFC3339),
			fmt.Sprintf("%s %s", s.Browser.Name, s.Browser.Version),
			fmt.Sprintf("%d", len(s.Results)),
			format.Percent(s.OverallScore),
		})
	}

	return rows
}

// loadHistory opens the history store, loads every recorded suite and
// releases the store again. Shared by the history, export and recommend
// commands and their interactive counterparts.
func loadHistory() ([]*suite.Suite, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	history, err := store.Open(Logger, store.Options{Dir: cfg.StoreDir})
	if err != nil {
		return nil, fmt.Errorf("opening history store: %w", err)
	}

	defer func() {
		if closeErr := history.Close(); closeErr != nil {
			Logger.WithError(closeErr).Warn("failed to close history store")
		}
	}()

	suites, err := history.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	return suites, nil
}
