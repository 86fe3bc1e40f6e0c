package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/probelab/browsercheck/internal/config"
	"github.com/probelab/browsercheck/internal/output"
	"github.com/probelab/browsercheck/internal/probe"
	"github.com/probelab/browsercheck/pkg/interactive"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive mode",
	Long:  `Launches the interactive menu for browsercheck.`,
	Run: func(_ *cobra.Command, _ []string) {
		runInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// batteryNames is the canonical probe order offered in the picker.
var batteryNames = []string{
	probe.FeatureCamera,
	probe.FeatureMicrophone,
	probe.FeatureGeolocation,
	probe.FeatureMotionSensors,
	probe.FeatureFileSystem,
	probe.FeatureNotifications,
	probe.FeatureAppSupport,
	probe.FeatureNetwork,
	probe.FeaturePerformance,
}

func runInteractive() {
	fmt.Println("browsercheck - Interactive Mode")
	fmt.Println("===============================")
	fmt.Println()

	for {
		if err := interactive.ShowMainMenu(interactiveOptions()); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

// interactiveOptions builds the main menu. Every action returns nil so a
// failed operation drops back to the menu instead of ending the session.
func interactiveOptions() []interactive.MenuOption {
	return []interactive.MenuOption{
		{
			Name:        "Run Full Battery",
			Description: "Probe all nine capabilities and display the scored suite",
			Action: func() error {
				interactiveRun(nil)
				return nil
			},
		},
		{
			Name:        "Run Selected Probes",
			Description: "Pick a subset of capabilities to probe",
			Action: func() error {
				names, err := interactive.SelectProbes(batteryNames)
				if err != nil {
					return nil
				}

				if len(names) == 0 {
					fmt.Println("Nothing selected.")
					interactive.PauseForEnter()
					return nil
				}

				interactiveRun(names)
				return nil
			},
		},
		{
			Name:        "Show History",
			Description: "List persisted suites, newest first",
			Action: func() error {
				interactiveHistory()
				return nil
			},
		},
		{
			Name:        "Export Suite",
			Description: "Render a persisted suite as markdown or JSON",
			Action: func() error {
				interactiveExport()
				return nil
			},
		},
		{
			Name:        "Show Config",
			Description: "Display current environment configuration",
			Action: func() error {
				cfg, err := config.Load()
				if err != nil {
					printError("Loading config failed", err)
				} else {
					fmt.Println(cfg.String())
				}

				interactive.PauseForEnter()
				return nil
			},
		},
	}
}

// printError routes interactive failures through the shared formatter so
// error styling matches the run output.
func printError(message string, err error) {
	output.NewFormatter(Logger, os.Stdout, nil).PrintError(message, err)
}

// interactiveRun executes a battery and offers to persist the result.
func interactiveRun(names []string) {
	cfg, err := config.Load()
	if err != nil {
		printError("Loading config failed", err)
		interactive.PauseForEnter()

		return
	}

	save := interactive.Confirm("Save the completed suite to history?")

	if err := runSuite(Logger, cfg, names, save); err != nil {
		printError("Suite run failed", err)
	}

	interactive.PauseForEnter()
}

// interactiveHistory prints the same table as the history command.
func interactiveHistory() {
	suites, err := loadHistory()
	if err != nil {
		printError("Loading history failed", err)
		interactive.PauseForEnter()

		return
	}

	if len(suites) == 0 {
		fmt.Println("No suites recorded yet. Run a battery and save it first.")
		interactive.PauseForEnter()

		return
	}

	output.NewRenderer(Logger).RenderToWriter(os.Stdout, historyHeaders, historyRows(suites))
	interactive.PauseForEnter()
}

// interactiveExport picks a persisted suite and an export format, then
// prints the rendered document.
func interactiveExport() {
	suites, err := loadHistory()
	if err != nil {
		printError("Loading history failed", err)
		interactive.PauseForEnter()

		return
	}

	if len(suites) == 0 {
		fmt.Println("No suites recorded yet. Run a battery and save it first.")
		interactive.PauseForEnter()

		return
	}

	labels := make([]string, len(suites))
	for i, s := range suites {
		labels[i] = fmt.Sprintf("%s  %s %s  score %d%%",
			s.Timestamp.Local().Format(time.RFC3339),
			s.Browser.Name, s.Browser.Version, s.OverallScore)
	}

	index, err := interactive.SelectIndex("Which suite should be exported?", labels)
	if err != nil {
		return
	}

	formatName, err := interactive.SelectFrom("Which format?", []string{exportFormatMarkdown, exportFormatJSON})
	if err != nil {
		return
	}

	document, err := renderSuite(suites[index], formatName)
	if err != nil {
		printError("Rendering suite failed", err)
		interactive.PauseForEnter()

		return
	}

	fmt.Println(document)
	interactive.PauseForEnter()
}
