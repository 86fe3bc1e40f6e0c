package chromedriver

import (
	"context"
	"errors"
	"fmt"

	"github.com/probelab/browsercheck/internal/platform"
)

// Surfaces bundles the live binding for every capability interface. Several
// platform interfaces share method names, so the clashing ones are exposed
// through small views over the browser instead of on *Browser itself.
func (b *Browser) Surfaces() platform.Surfaces {
	return platform.Surfaces{
		Environment:    b,
		MediaDevices:   b,
		Geolocator:     b,
		MotionSensors:  motionView{b},
		FileAccess:     b,
		Notifications:  notificationView{b},
		ServiceWorkers: workerView{b},
		AppFeatures:    appView{b},
		NetworkInfo:    networkView{b},
		TimingInfo:     timingView{b},
	}
}

// currentPositionScript resolves (never rejects) with a tagged outcome so
// the Go side can classify denial vs timeout vs absence.
const currentPositionScript = `(() => new Promise((resolve) => {
	if (!navigator.geolocation) {
		resolve({status: 'unsupported'});
		return;
	}
	navigator.geolocation.getCurrentPosition(
		pos => resolve({
			status: 'ok',
			latitude: pos.coords.latitude,
			longitude: pos.coords.longitude,
			accuracy: pos.coords.accuracy
		}),
		err => {
			let status = 'error';
			if (err.code === 1) status = 'denied';
			if (err.code === 3) status = 'timeout';
			resolve({status: status, message: err.message});
		},
		{enableHighAccuracy: %t, timeout: %d, maximumAge: 60000}
	);
}))()`

type positionOutcome struct {
	Status    string  `json:"status"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Message   string  `json:"message"`
}

// CurrentPosition implements platform.Geolocator.
func (b *Browser) CurrentPosition(ctx context.Context, opts platform.PositionOptions) (platform.Position, error) {
	var outcome positionOutcome

	script := fmt.Sprintf(currentPositionScript, opts.HighAccuracy, opts.Timeout.Milliseconds())
	if err := b.eval(ctx, script, &outcome); err != nil {
		return platform.Position{}, fmt.Errorf("evaluating position request: %w", err)
	}

	switch outcome.Status {
	case "ok":
		return platform.Position{
			Latitude:       outcome.Latitude,
			Longitude:      outcome.Longitude,
			AccuracyMeters: outcome.Accuracy,
		}, nil
	case "unsupported":
		return platform.Position{}, fmt.Errorf("%w: geolocation API missing", platform.ErrUnsupported)
	case "denied":
		return platform.Position{}, fmt.Errorf("%w: %s", platform.ErrPermissionDenied, outcome.Message)
	case "timeout":
		return platform.Position{}, fmt.Errorf("%w: %s", platform.ErrTimeout, outcome.Message)
	default:
		return platform.Position{}, errors.New(outcome.Message)
	}
}

// NativePickerAvailable implements platform.FileAccess.
func (b *Browser) NativePickerAvailable() bool {
	return b.evalBool(`typeof window.showOpenFilePicker === 'function'`)
}

// motionView implements platform.MotionSensors.
type motionView struct {
	b *Browser
}

func (v motionView) Available() bool {
	return v.b.evalBool(`typeof DeviceMotionEvent !== 'undefined'`)
}

func (v motionView) RequiresPermission() bool {
	return v.b.evalBool(`typeof DeviceMotionEvent !== 'undefined' && typeof DeviceMotionEvent.requestPermission === 'function'`)
}

func (v motionView) RequestPermission(ctx context.Context) (platform.PermissionState, error) {
	var state string

	script := `(async () => {
		try {
			return await DeviceMotionEvent.requestPermission();
		} catch (err) {
			return 'denied';
		}
	})()`

	if err := v.b.eval(ctx, script, &state); err != nil {
		return platform.PermissionUnknown, fmt.Errorf("requesting motion permission: %w", err)
	}

	switch platform.PermissionState(state) {
	case platform.PermissionGranted, platform.PermissionDenied, platform.PermissionPrompt:
		return platform.PermissionState(state), nil
	default:
		return platform.PermissionUnknown, nil
	}
}

// notificationView implements platform.Notifications. Permission is read
// without ever prompting.
type notificationView struct {
	b *Browser
}

func (v notificationView) Available() bool {
	return v.b.evalBool(`typeof Notification !== 'undefined'`)
}

func (v notificationView) Permission() platform.PermissionState {
	var state string

	script := `typeof Notification !== 'undefined' ? Notification.permission : 'unknown'`
	if err := v.b.eval(context.Background(), script, &state); err != nil {
		v.b.log.WithError(err).Warn("notification permission lookup failed")
		return platform.PermissionUnknown
	}

	switch platform.PermissionState(state) {
	case platform.PermissionGranted, platform.PermissionDenied:
		return platform.PermissionState(state)
	case "default":
		return platform.PermissionPrompt
	default:
		return platform.PermissionUnknown
	}
}

// workerView implements platform.ServiceWorkers.
type workerView struct {
	b *Browser
}

func (v workerView) Available() bool {
	return v.b.evalBool(`'serviceWorker' in navigator`)
}

func (v workerView) ActiveRegistration(ctx context.Context) (bool, error) {
	var active bool

	script := `(async () => {
		if (!('serviceWorker' in navigator)) return false;
		try {
			const reg = await navigator.serviceWorker.getRegistration();
			return !!(reg && reg.active);
		} catch (err) {
			return false;
		}
	})()`

	if err := v.b.eval(ctx, script, &active); err != nil {
		return false, fmt.Errorf("checking service worker registration: %w", err)
	}

	return active, nil
}

// appView implements platform.AppFeatures.
type appView struct {
	b *Browser
}

func (v appView) Detect(ctx context.Context) (platform.AppFeatureSet, error) {
	var set platform.AppFeatureSet

	script := `(() => ({
		serviceWorker: 'serviceWorker' in navigator,
		installSupport: 'onbeforeinstallprompt' in window || window.matchMedia('(display-mode: standalone)').matches,
		pushMessaging: 'PushManager' in window,
		backgroundSync: 'serviceWorker' in navigator && 'SyncManager' in window,
		cacheStorage: 'caches' in window
	}))()`

	if err := v.b.eval(ctx, script, &set); err != nil {
		return platform.AppFeatureSet{}, fmt.Errorf("detecting app features: %w", err)
	}

	return set, nil
}

// networkView implements platform.NetworkInfo.
type networkView struct {
	b *Browser
}

func (v networkView) Detect(ctx context.Context) (platform.NetworkFeatureSet, error) {
	var set platform.NetworkFeatureSet

	script := `(async () => {
		let active = false;
		if ('serviceWorker' in navigator) {
			try {
				const reg = await navigator.serviceWorker.getRegistration();
				active = !!(reg && reg.active);
			} catch (err) {}
		}
		return {
			connectionInfo: !!(navigator.connection || navigator.mozConnection || navigator.webkitConnection),
			onlineEvents: 'onLine' in navigator,
			activeServiceWorker: active
		};
	})()`

	if err := v.b.eval(ctx, script, &set); err != nil {
		return platform.NetworkFeatureSet{}, fmt.Errorf("detecting network features: %w", err)
	}

	return set, nil
}

// timingView implements platform.TimingInfo.
type timingView struct {
	b *Browser
}

func (v timingView) Detect(ctx context.Context) (platform.TimingFeatureSet, error) {
	var set platform.TimingFeatureSet

	script := `(() => ({
		now: typeof performance !== 'undefined' && typeof performance.now === 'function',
		navigationTiming: typeof performance !== 'undefined' && typeof performance.getEntriesByType === 'function' && performance.getEntriesByType('navigation').length > 0,
		resourceTiming: typeof performance !== 'undefined' && typeof performance.getEntriesByType === 'function',
		userTiming: typeof performance !== 'undefined' && typeof performance.mark === 'function' && typeof performance.measure === 'function',
		memoryInfo: typeof performance !== 'undefined' && !!performance.memory
	}))()`

	if err := v.b.eval(ctx, script, &set); err != nil {
		return platform.TimingFeatureSet{}, fmt.Errorf("detecting timing features: %w", err)
	}

	return set, nil
}
