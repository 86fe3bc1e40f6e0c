package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/probelab/browsercheck/internal/probe"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	errBatteryEmpty     = errors.New("battery must name at least one probe")
	errUnknownProbeName = errors.New("battery names an unknown probe")
	errNegativeTimeout  = errors.New("geolocation timeout must not be negative")
)

// knownProbes are the capability names a battery file may select.
var knownProbes = map[string]bool{
	probe.FeatureCamera:        true,
	probe.FeatureMicrophone:    true,
	probe.FeatureGeolocation:   true,
	probe.FeatureMotionSensors: true,
	probe.FeatureFileSystem:    true,
	probe.FeatureNotifications: true,
	probe.FeatureAppSupport:    true,
	probe.FeatureNetwork:       true,
	probe.FeaturePerformance:   true,
}

// Battery is an optional YAML file selecting which probes to run and tuning
// per-probe options. Probe order in the file is the launch order.
type Battery struct {
	Probes      []string           `yaml:"probes"`
	Geolocation GeolocationOptions `yaml:"geolocation"`
}

// GeolocationOptions tunes the only probe with an explicit timeout.
type GeolocationOptions struct {
	Timeout      time.Duration `yaml:"timeout"`
	HighAccuracy bool          `yaml:"high_accuracy"`
}

// LoadBattery reads and validates a battery file.
func LoadBattery(log logrus.FieldLogger, path string) (*Battery, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: battery files come from trusted local paths
	if err != nil {
		return nil, fmt.Errorf("reading battery file: %w", err)
	}

	var battery Battery
	if err := yaml.Unmarshal(content, &battery); err != nil {
		return nil, fmt.Errorf("parsing battery file %s: %w", path, err)
	}

	if err := battery.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"file":   path,
		"probes": len(battery.Probes),
	}).Debug("battery loaded")

	return &battery, nil
}

// Validate checks the battery for unknown probe names and bad options.
func (b *Battery) Validate() error {
	if len(b.Probes) == 0 {
		return errBatteryEmpty
	}

	for _, name := range b.Probes {
		if !knownProbes[name] {
			return fmt.Errorf("%w: %q", errUnknownProbeName, name)
		}
	}

	// Zero is valid and means "use the probe's default timeout".
	if b.Geolocation.Timeout < 0 {
		return errNegativeTimeout
	}

	return nil
}
