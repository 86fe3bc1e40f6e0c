package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/probelab/browsercheck/internal/config"
	"github.com/probelab/browsercheck/internal/metrics"
	"github.com/probelab/browsercheck/internal/output"
	"github.com/probelab/browsercheck/internal/platform"
	"github.com/probelab/browsercheck/internal/platform/chromedriver"
	"github.com/probelab/browsercheck/internal/probe"
	"github.com/probelab/browsercheck/internal/profiler"
	"github.com/probelab/browsercheck/internal/store"
	"github.com/probelab/browsercheck/internal/suite"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	runProbes  []string
	runSave    bool
	runVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the capability probe battery",
	Long: `Run the capability probe battery against a live browser.

By default the full fixed battery of nine probes runs concurrently:
camera, microphone, geolocation, motion, filesystem, notifications,
pwa, network, performance.

A subset can be selected with repeated --probe flags, or through a
battery YAML file (BATTERY_FILE). Results print as a table; --save
appends the suite to the local history store.

Examples:
  browsercheck run
  browsercheck run --probe camera --probe microphone --save`,
	RunE: func(_ *cobra.Command, _ []string) error {
		log := Logger
		if runVerbose {
			log = verboseLogger()
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		return runSuite(log, cfg, runProbes, runSave)
	},
}

func init() {
	runCmd.Flags().StringSliceVar(&runProbes, "probe", nil, "Probe name to run (repeatable); default is the full battery")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Persist the completed suite to the history store")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(runCmd)
}

// runSuite launches a browser, executes the selected probes and prints the
// scored suite. Shared by the run command and interactive mode.
func runSuite(log *logrus.Logger, cfg *config.Config, probeNames []string, save bool) error {
	geoOpts := platform.PositionOptions{Timeout: cfg.GeolocationTimeout}

	// A battery file supplies the default selection and probe options when
	// no explicit selection was given.
	if cfg.BatteryFile != "" && len(probeNames) == 0 {
		battery, err := config.LoadBattery(log, cfg.BatteryFile)
		if err != nil {
			return fmt.Errorf("loading battery file: %w", err)
		}

		probeNames = battery.Probes
		geoOpts.HighAccuracy = battery.Geolocation.HighAccuracy

		if battery.Geolocation.Timeout > 0 {
			geoOpts.Timeout = battery.Geolocation.Timeout
		}
	}

	// The browser outlives the probe deadline so a timed-out run can still
	// shut it down cleanly.
	browser, err := chromedriver.Launch(context.Background(), log, chromedriver.Options{
		ExecPath: cfg.BrowserPath,
		Headless: cfg.Headless,
	})
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	defer browser.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ProbeTimeout)
	defer cancel()

	collector := metrics.NewCollector(log)
	if err := collector.Start(ctx); err != nil {
		return fmt.Errorf("starting metrics collector: %w", err)
	}

	defer func() {
		if stopErr := collector.Stop(); stopErr != nil {
			log.WithError(stopErr).Warn("failed to stop metrics collector")
		}
	}()

	registry := probe.Battery(log, browser.Surfaces(), geoOpts)
	runner := suite.NewRunner(&suite.RunnerConfig{
		Logger:   log,
		Registry: registry,
		Profiler: profiler.New(browser),
		Metrics:  collector,
	})

	formatter := output.NewFormatter(log, os.Stdout, collector)
	formatter.PrintPhase("Probing capabilities")

	var completed *suite.Suite
	if len(probeNames) == 0 {
		completed = runner.RunAll(ctx)
	} else {
		completed = runner.RunSelected(ctx, probeNames)
	}

	formatter.PrintBrowser(completed.Browser)
	formatter.PrintResults(completed.Results)
	formatter.PrintSummary()

	if save {
		history, err := store.Open(log, store.Options{Dir: cfg.StoreDir})
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}

		defer func() {
			if closeErr := history.Close(); closeErr != nil {
				log.WithError(closeErr).Warn("failed to close history store")
			}
		}()

		if err := history.Save(completed); err != nil {
			return fmt.Errorf("saving suite: %w", err)
		}

		formatter.PrintSuccess(fmt.Sprintf("Suite saved (score %d%%)", completed.OverallScore))
	}

	return nil
}
