package cmd

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/probelab/browsercheck/internal/profiler"
	"github.com/probelab/browsercheck/internal/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSuite(t *testing.T) {
	t.Parallel()

	s := &suite.Suite{
		ID:           "export-test",
		Browser:      profiler.BrowserInfo{Name: "Chrome", Version: "120", Platform: "Linux x86_64"},
		Timestamp:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		OverallScore: 100,
	}

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()

		document, err := renderSuite(s, exportFormatMarkdown)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(document, "# Device Compatibility Report\n"))
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		document, err := renderSuite(s, exportFormatJSON)
		require.NoError(t, err)

		var decoded suite.Suite
		require.NoError(t, json.Unmarshal([]byte(document), &decoded))
		assert.Equal(t, "export-test", decoded.ID)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := renderSuite(s, "pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}
