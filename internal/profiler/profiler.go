// Package profiler derives a browser descriptor from the ambient
// environment. Detection is best effort: unknown user agents degrade to
// "Unknown" rather than failing.
package profiler

import (
	"regexp"
	"strings"

	"github.com/probelab/browsercheck/internal/platform"
)

// BrowserInfo describes the runtime a suite was recorded in. Derived once
// per run and immutable thereafter.
type BrowserInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
	Mobile   bool   `json:"mobile"`
	PWA      bool   `json:"pwa"`
}

const unknown = "Unknown"

var (
	// Edge must be matched before Chrome: its user agent carries both
	// "Chrome" and "Safari" tokens.
	edgeVersion    = regexp.MustCompile(`Edge?/(\d+)`)
	firefoxVersion = regexp.MustCompile(`Firefox/(\d+)`)
	chromeVersion  = regexp.MustCompile(`Chrome/(\d+)`)
	safariVersion  = regexp.MustCompile(`Version/(\d+)`)

	mobileTokens = regexp.MustCompile(`(?i)android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini`)
)

// Profiler inspects an injected environment.
type Profiler struct {
	env platform.Environment
}

// New creates a profiler over the given environment.
func New(env platform.Environment) *Profiler {
	return &Profiler{env: env}
}

// BrowserInfo produces the descriptor. It never fails; with no environment
// bound it returns a fully unknown descriptor.
func (p *Profiler) BrowserInfo() BrowserInfo {
	if p.env == nil {
		return BrowserInfo{Name: unknown, Version: unknown, Platform: unknown}
	}

	ua := p.env.UserAgent()
	name, version := detect(ua)

	return BrowserInfo{
		Name:     name,
		Version:  version,
		Platform: p.env.Platform(),
		Mobile:   mobileTokens.MatchString(ua),
		PWA:      p.env.Standalone(),
	}
}

// detect matches known browser tokens in precedence order.
func detect(ua string) (name, version string) {
	switch {
	case strings.Contains(ua, "Edg"):
		return "Edge", capture(edgeVersion, ua)
	case strings.Contains(ua, "Firefox"):
		return "Firefox", capture(firefoxVersion, ua)
	case strings.Contains(ua, "Chrome"):
		return "Chrome", capture(chromeVersion, ua)
	case strings.Contains(ua, "Safari"):
		return "Safari", capture(safariVersion, ua)
	default:
		return unknown, unknown
	}
}

func capture(re *regexp.Regexp, ua string) string {
	matches := re.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return unknown
	}

	return matches[1]
}
