package report

import (
	"github.com/probelab/browsercheck/internal/probe"
	"github.com/probelab/browsercheck/internal/suite"
)

// slowProbeMS marks a capability check as slow enough to call out.
const slowProbeMS = 3000

// adviceByFeature maps recognized failure categories to advisories, emitted
// in this order.
var adviceByFeature = []struct {
	feature string
	advice  string
}{
	{probe.FeatureCamera, "Camera check failed - verify a camera is connected and grant camera permission in the browser settings."},
	{probe.FeatureMicrophone, "Microphone check failed - verify an input device is present and grant microphone permission."},
	{probe.FeatureGeolocation, "Geolocation check failed - enable location services and allow the site to read your position."},
	{probe.FeatureAppSupport, "Progressive app surfaces are missing - serve the app over HTTPS and register a service worker to enable them."},
	{probe.FeatureNotifications, "Notifications are unavailable - they require both the notification API and service worker support."},
}

// Recommendations scans failed features across the given suites and emits
// one human-readable advisory per recognized failure category, plus generic
// performance and browser-specific advisories. When nothing needs attention
// it returns a single positive acknowledgement instead of an empty list.
func Recommendations(suites []*suite.Suite) []string {
	var (
		failed       = make(map[string]bool)
		sawSlowProbe bool
		mobileSafari bool
		installable  bool
	)

	for _, s := range suites {
		for _, r := range s.Results {
			if !r.Supported {
				failed[r.Feature] = true
			}

			if r.PerformanceMS > slowProbeMS {
				sawSlowProbe = true
			}

			if r.Feature == probe.FeatureAppSupport && r.Supported && !s.Browser.PWA {
				installable = true
			}
		}

		if s.Browser.Name == "Safari" && s.Browser.Mobile {
			mobileSafari = true
		}
	}

	var recommendations []string

	for _, entry := range adviceByFeature {
		if failed[entry.feature] {
			recommendations = append(recommendations, entry.advice)
		}
	}

	if sawSlowProbe {
		recommendations = append(recommendations,
			"Some capability checks responded slowly - close other tabs using the hardware and re-run the suite.")
	}

	if installable {
		recommendations = append(recommendations,
			"This browser supports progressive app features - install the app for offline support and faster startup.")
	}

	if mobileSafari {
		recommendations = append(recommendations,
			"Mobile Safari requires a user interaction before camera or microphone capture can start.")
	}

	if len(recommendations) == 0 {
		return []string{"All probed capabilities look good - no action needed."}
	}

	return recommendations
}
