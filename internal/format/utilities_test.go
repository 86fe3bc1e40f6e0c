package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "microseconds", duration: 250 * time.Microsecond, expected: "250µs"},
		{name: "milliseconds", duration: 42 * time.Millisecond, expected: "42ms"},
		{name: "seconds", duration: 2500 * time.Millisecond, expected: "2.5s"},
		{name: "minutes", duration: 90 * time.Second, expected: "1.5m"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Duration(tt.duration))
		})
	}
}

func TestMillis(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12ms", Millis(12.5))
	assert.Equal(t, "500µs", Millis(0.5))
}

func TestPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "67%", Percent(67))
	assert.Equal(t, "0%", Percent(0))
	assert.Equal(t, "100%", Percent(100))
}
