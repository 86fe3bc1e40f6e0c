package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveOptions(t *testing.T) {
	t.Parallel()

	options := interactiveOptions()

	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, opt.Name)

		require.NotNil(t, opt.Action, opt.Name)
		assert.NotEmpty(t, opt.Description, opt.Name)
	}

	// Every store- and report-backed operation is reachable from the menu,
	// not only from the subcommands.
	assert.Equal(t, []string{
		"Run Full Battery",
		"Run Selected Probes",
		"Show History",
		"Export Suite",
		"Show Config",
	}, names)
}

func TestBatteryNames_MatchFullBattery(t *testing.T) {
	t.Parallel()

	assert.Len(t, batteryNames, 9)
}
