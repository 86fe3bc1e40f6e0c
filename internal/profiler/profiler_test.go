package profiler

import (
	"testing"

	"github.com/probelab/browsercheck/internal/platform/platformtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiler_BrowserInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ua          string
		wantName    string
		wantVersion string
		wantMobile  bool
	}{
		{
			name:        "chrome with bare major version",
			ua:          "Chrome/120",
			wantName:    "Chrome",
			wantVersion: "120",
		},
		{
			name:        "chrome desktop full token",
			ua:          "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantName:    "Chrome",
			wantVersion: "120",
		},
		{
			name:        "edge wins over its embedded chrome token",
			ua:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91",
			wantName:    "Edge",
			wantVersion: "120",
		},
		{
			name:        "firefox",
			ua:          "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			wantName:    "Firefox",
			wantVersion: "121",
		},
		{
			name:        "safari is matched only without a chrome token",
			ua:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
			wantName:    "Safari",
			wantVersion: "17",
		},
		{
			name:        "mobile safari on iphone",
			ua:          "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
			wantName:    "Safari",
			wantVersion: "17",
			wantMobile:  true,
		},
		{
			name:        "android chrome is mobile",
			ua:          "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			wantName:    "Chrome",
			wantVersion: "120",
			wantMobile:  true,
		},
		{
			name:        "unmatched agents degrade gracefully",
			ua:          "curl/8.4.0",
			wantName:    "Unknown",
			wantVersion: "Unknown",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := &platformtest.Environment{UA: tt.ua, Plat: "TestOS"}
			info := New(env).BrowserInfo()

			assert.Equal(t, tt.wantName, info.Name)
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.Equal(t, tt.wantMobile, info.Mobile)
			assert.Equal(t, "TestOS", info.Platform)
		})
	}
}

func TestProfiler_StandaloneMapsToPWA(t *testing.T) {
	t.Parallel()

	env := &platformtest.Environment{UA: "Chrome/120", StandaloneMode: true}

	info := New(env).BrowserInfo()

	assert.True(t, info.PWA)
}

func TestProfiler_NilEnvironment(t *testing.T) {
	t.Parallel()

	info := New(nil).BrowserInfo()

	require.Equal(t, "Unknown", info.Name)
	require.Equal(t, "Unknown", info.Version)
	assert.False(t, info.Mobile)
	assert.False(t, info.PWA)
}
