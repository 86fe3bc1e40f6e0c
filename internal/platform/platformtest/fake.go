// Package platformtest provides scriptable in-memory implementations of the
// platform capability interfaces, so probes and runners can be exercised
// without a real browser.
package platformtest

import (
	"context"
	"sync"

	"github.com/probelab/browsercheck/internal/platform"
)

// Environment is a fake platform.Environment.
type Environment struct {
	UA             string
	Plat           string
	StandaloneMode bool
}

func (e *Environment) UserAgent() string { return e.UA }
func (e *Environment) Platform() string  { return e.Plat }
func (e *Environment) Standalone() bool  { return e.StandaloneMode }

// Track is a fake media track recording Stop invocations. Safe for
// concurrent use; camera and microphone probes may share one stream.
type Track struct {
	TrackKind  string
	TrackLabel string
	StopCalls  int
	StopErr    error

	mu sync.Mutex
}

func (t *Track) Kind() string  { return t.TrackKind }
func (t *Track) Label() string { return t.TrackLabel }

func (t *Track) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.StopCalls++

	return t.StopErr
}

// Stream is a fake media stream.
type Stream struct {
	TrackList []*Track
}

func (s *Stream) Tracks() []platform.MediaTrack {
	tracks := make([]platform.MediaTrack, len(s.TrackList))
	for i, t := range s.TrackList {
		tracks[i] = t
	}

	return tracks
}

// MediaDevices is a fake platform.MediaDevices.
type MediaDevices struct {
	Stream *Stream
	Err    error
	// LastConstraints records the most recent acquisition request.
	LastConstraints platform.StreamConstraints

	mu sync.Mutex
}

func (m *MediaDevices) AcquireStream(_ context.Context, constraints platform.StreamConstraints) (platform.MediaStream, error) {
	m.mu.Lock()
	m.LastConstraints = constraints
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	return m.Stream, nil
}

// Geolocator is a fake platform.Geolocator. With Block set it never settles
// on its own and returns the context error once the probe's bound fires.
type Geolocator struct {
	Pos   platform.Position
	Err   error
	Block bool
}

func (g *Geolocator) CurrentPosition(ctx context.Context, _ platform.PositionOptions) (platform.Position, error) {
	if g.Block {
		<-ctx.Done()
		return platform.Position{}, ctx.Err()
	}

	if g.Err != nil {
		return platform.Position{}, g.Err
	}

	return g.Pos, nil
}

// MotionSensors is a fake platform.MotionSensors.
type MotionSensors struct {
	Present         bool
	NeedsPermission bool
	State           platform.PermissionState
	Err             error
}

func (m *MotionSensors) Available() bool          { return m.Present }
func (m *MotionSensors) RequiresPermission() bool { return m.NeedsPermission }

func (m *MotionSensors) RequestPermission(_ context.Context) (platform.PermissionState, error) {
	if m.Err != nil {
		return platform.PermissionUnknown, m.Err
	}

	return m.State, nil
}

// FileAccess is a fake platform.FileAccess.
type FileAccess struct {
	NativePicker bool
}

func (f *FileAccess) NativePickerAvailable() bool { return f.NativePicker }

// Notifications is a fake platform.Notifications.
type Notifications struct {
	Present bool
	State   platform.PermissionState
}

func (n *Notifications) Available() bool                     { return n.Present }
func (n *Notifications) Permission() platform.PermissionState { return n.State }

// ServiceWorkers is a fake platform.ServiceWorkers.
type ServiceWorkers struct {
	Present bool
	Active  bool
	Err     error
}

func (s *ServiceWorkers) Available() bool { return s.Present }

func (s *ServiceWorkers) ActiveRegistration(_ context.Context) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}

	return s.Active, nil
}

// AppFeatures is a fake platform.AppFeatures.
type AppFeatures struct {
	Set platform.AppFeatureSet
	Err error
}

func (a *AppFeatures) Detect(_ context.Context) (platform.AppFeatureSet, error) {
	if a.Err != nil {
		return platform.AppFeatureSet{}, a.Err
	}

	return a.Set, nil
}

// NetworkInfo is a fake platform.NetworkInfo.
type NetworkInfo struct {
	Set platform.NetworkFeatureSet
	Err error
}

func (n *NetworkInfo) Detect(_ context.Context) (platform.NetworkFeatureSet, error) {
	if n.Err != nil {
		return platform.NetworkFeatureSet{}, n.Err
	}

	return n.Set, nil
}

// TimingInfo is a fake platform.TimingInfo.
type TimingInfo struct {
	Set platform.TimingFeatureSet
	Err error
}

func (t *TimingInfo) Detect(_ context.Context) (platform.TimingFeatureSet, error) {
	if t.Err != nil {
		return platform.TimingFeatureSet{}, t.Err
	}

	return t.Set, nil
}

// AllSupported returns surfaces where every capability check passes: handy
// as a baseline that individual tests then break selectively.
func AllSupported() platform.Surfaces {
	return platform.Surfaces{
		Environment: &Environment{
			UA:   "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Plat: "Linux x86_64",
		},
		MediaDevices: &MediaDevices{
			Stream: &Stream{TrackList: []*Track{{TrackKind: "video", TrackLabel: "fake camera"}, {TrackKind: "audio", TrackLabel: "fake mic"}}},
		},
		Geolocator:     &Geolocator{Pos: platform.Position{Latitude: 52.52, Longitude: 13.405, AccuracyMeters: 25}},
		MotionSensors:  &MotionSensors{Present: true},
		FileAccess:     &FileAccess{NativePicker: true},
		Notifications:  &Notifications{Present: true, State: platform.PermissionPrompt},
		ServiceWorkers: &ServiceWorkers{Present: true, Active: true},
		AppFeatures:    &AppFeatures{Set: platform.AppFeatureSet{ServiceWorker: true, PushMessaging: true, CacheStorage: true}},
		NetworkInfo:    &NetworkInfo{Set: platform.NetworkFeatureSet{OnlineEvents: true, ActiveServiceWkr: true}},
		TimingInfo:     &TimingInfo{Set: platform.TimingFeatureSet{Now: true, ResourceTiming: true, UserTiming: true}},
	}
}
