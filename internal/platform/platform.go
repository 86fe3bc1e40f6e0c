// Package platform defines the narrow interfaces through which probes touch
// browser API surfaces. Probes depend only on these interfaces, so the scoring
// and aggregation logic stays platform-agnostic and unit-testable; concrete
// bindings (a live headless browser, test fakes) live in subpackages.
package platform

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnsupported indicates the capability's entry point does not exist
	// on the current platform.
	ErrUnsupported = errors.New("capability not supported on this platform")
	// ErrPermissionDenied indicates the user or platform declined consent.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrTimeout indicates the capability did not settle within its bound.
	ErrTimeout = errors.New("capability check timed out")
)

// PermissionState mirrors the browser permission model.
type PermissionState string

const (
	// PermissionGranted means consent has been given.
	PermissionGranted PermissionState = "granted"
	// PermissionDenied means consent has been refused.
	PermissionDenied PermissionState = "denied"
	// PermissionPrompt means the platform would ask the user.
	PermissionPrompt PermissionState = "prompt"
	// PermissionUnknown means the state could not be determined.
	PermissionUnknown PermissionState = "unknown"
)

// Environment exposes ambient facts about the runtime the probes execute in.
type Environment interface {
	UserAgent() string
	Platform() string
	// Standalone reports whether the app runs in standalone display mode
	// (installed as an app) rather than a browser tab.
	Standalone() bool
}

// StreamConstraints selects which media kinds a stream acquisition asks for.
type StreamConstraints struct {
	Audio bool
	Video bool
}

// MediaTrack is a single audio or video track of an acquired stream.
// Stop must be called exactly once by the acquirer.
type MediaTrack interface {
	Kind() string
	Label() string
	Stop() error
}

// MediaStream is a short-lived handle on acquired capture hardware.
type MediaStream interface {
	Tracks() []MediaTrack
}

// MediaDevices acquires media streams (camera, microphone).
type MediaDevices interface {
	AcquireStream(ctx context.Context, constraints StreamConstraints) (MediaStream, error)
}

// Position is a geographic fix.
type Position struct {
	Latitude  float64
	Longitude float64
	// AccuracyMeters is the radius of the 95% confidence circle.
	AccuracyMeters float64
}

// PositionOptions bounds a position request.
type PositionOptions struct {
	Timeout      time.Duration
	HighAccuracy bool
}

// Geolocator resolves the current position.
type Geolocator interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (Position, error)
}

// MotionSensors reports motion/orientation event availability. Some platforms
// (iOS-style) gate the events behind an explicit async permission grant.
type MotionSensors interface {
	Available() bool
	RequiresPermission() bool
	RequestPermission(ctx context.Context) (PermissionState, error)
}

// FileAccess distinguishes the universal file-input fallback from the native
// file-picker API.
type FileAccess interface {
	NativePickerAvailable() bool
}

// Notifications reports notification availability and the current permission
// state without ever forcing a prompt.
type Notifications interface {
	Available() bool
	Permission() PermissionState
}

// ServiceWorkers reports service worker availability and registration state.
type ServiceWorkers interface {
	Available() bool
	ActiveRegistration(ctx context.Context) (bool, error)
}

// AppFeatureSet enumerates progressive-app surfaces present on the platform.
type AppFeatureSet struct {
	ServiceWorker  bool `json:"serviceWorker"`
	InstallSupport bool `json:"installSupport"`
	PushMessaging  bool `json:"pushMessaging"`
	BackgroundSync bool `json:"backgroundSync"`
	CacheStorage   bool `json:"cacheStorage"`
}

// Present returns the names of the present features, in a fixed order.
func (s AppFeatureSet) Present() []string {
	var present []string

	if s.ServiceWorker {
		present = append(present, "service worker")
	}

	if s.InstallSupport {
		present = append(present, "install support")
	}

	if s.PushMessaging {
		present = append(present, "push messaging")
	}

	if s.BackgroundSync {
		present = append(present, "background sync")
	}

	if s.CacheStorage {
		present = append(present, "cache storage")
	}

	return present
}

// AppFeatures detects progressive-app surfaces.
type AppFeatures interface {
	Detect(ctx context.Context) (AppFeatureSet, error)
}

// NetworkFeatureSet enumerates network awareness surfaces.
type NetworkFeatureSet struct {
	ConnectionInfo   bool `json:"connectionInfo"`
	OnlineEvents     bool `json:"onlineEvents"`
	ActiveServiceWkr bool `json:"activeServiceWorker"`
}

// Present returns the names of the present features, in a fixed order.
func (s NetworkFeatureSet) Present() []string {
	var present []string

	if s.ConnectionInfo {
		present = append(present, "connection info")
	}

	if s.OnlineEvents {
		present = append(present, "online/offline events")
	}

	if s.ActiveServiceWkr {
		present = append(present, "active service worker")
	}

	return present
}

// NetworkInfo detects network awareness surfaces.
type NetworkInfo interface {
	Detect(ctx context.Context) (NetworkFeatureSet, error)
}

// TimingFeatureSet enumerates performance measurement surfaces.
type TimingFeatureSet struct {
	Now              bool `json:"now"`
	NavigationTiming bool `json:"navigationTiming"`
	ResourceTiming   bool `json:"resourceTiming"`
	UserTiming       bool `json:"userTiming"`
	MemoryInfo       bool `json:"memoryInfo"`
}

// Present returns the names of the present features, in a fixed order.
func (s TimingFeatureSet) Present() []string {
	var present []string

	if s.Now {
		present = append(present, "high-resolution time")
	}

	if s.NavigationTiming {
		present = append(present, "navigation timing")
	}

	if s.ResourceTiming {
		present = append(present, "resource timing")
	}

	if s.UserTiming {
		present = append(present, "user timing")
	}

	if s.MemoryInfo {
		present = append(present, "memory info")
	}

	return present
}

// TimingInfo detects performance measurement surfaces.
type TimingInfo interface {
	Detect(ctx context.Context) (TimingFeatureSet, error)
}

// Surfaces bundles every capability interface a full probe battery needs.
// Bindings populate all fields; tests may populate only what a probe uses.
type Surfaces struct {
	Environment    Environment
	MediaDevices   MediaDevices
	Geolocator     Geolocator
	MotionSensors  MotionSensors
	FileAccess     FileAccess
	Notifications  Notifications
	ServiceWorkers ServiceWorkers
	AppFeatures    AppFeatures
	NetworkInfo    NetworkInfo
	TimingInfo     TimingInfo
}
