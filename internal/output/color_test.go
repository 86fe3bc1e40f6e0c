package output

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorHelper_FormatSupport(t *testing.T) {
	// Disable colors for consistent testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()

	t.Run("supported status", func(t *testing.T) {
		result := helper.FormatSupport(true)
		assert.Equal(t, "✓ SUPPORTED", result)
	})

	t.Run("unsupported status", func(t *testing.T) {
		result := helper.FormatSupport(false)
		assert.Equal(t, "✗ UNSUPPORTED", result)
	})
}

func TestColorHelper_ColorsDisabledWhenNoColor(t *testing.T) {
	// Enable NoColor flag
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()
	assert.False(t, helper.enabled)

	// Should return plain text
	assert.Equal(t, "test", helper.Success("test"))
	assert.Equal(t, "test", helper.Failure("test"))
	assert.Equal(t, "test", helper.Warning("test"))
	assert.Equal(t, "test", helper.Info("test"))
	assert.Equal(t, "test", helper.Muted("test"))
	assert.Equal(t, "test", helper.Header("test"))
}

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "short", truncate("short", 10))
	})

	t.Run("long strings get an ellipsis", func(t *testing.T) {
		result := truncate("abcdefghijklmnop", 10)
		assert.Equal(t, "abcdefg...", result)
		assert.Len(t, result, 10)
	})
}
