package probe

import (
	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// Registry maps capability names to detectors while preserving registration
// order, which is the canonical launch order for a full battery run.
type Registry struct {
	order     []string
	detectors map[string]Detector
	log       logrus.FieldLogger
}

// NewRegistry creates an empty registry.
func NewRegistry(log logrus.FieldLogger) *Registry {
	return &Registry{
		detectors: make(map[string]Detector),
		log:       log.WithField("component", "probe_registry"),
	}
}

// Register adds a detector. Registering a name twice replaces the detector
// but keeps its original position in the order.
func (r *Registry) Register(d Detector) {
	name := d.Name()

	if _, exists := r.detectors[name]; !exists {
		r.order = append(r.order, name)
	} else {
		r.log.WithField("probe", name).Warn("replacing registered probe")
	}

	r.detectors[name] = d
}

// Lookup returns the detector registered under name.
func (r *Registry) Lookup(name string) (Detector, bool) {
	d, ok := r.detectors[name]
	return d, ok
}

// Names returns all registered capability names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Len returns the number of registered detectors.
func (r *Registry) Len() int {
	return len(r.detectors)
}

// Battery builds a registry holding the full fixed battery of nine
// detectors, wired against the given platform surfaces, in canonical order.
func Battery(log logrus.FieldLogger, surfaces platform.Surfaces, geoOpts platform.PositionOptions) *Registry {
	r := NewRegistry(log)

	r.Register(NewCamera(log, surfaces.MediaDevices))
	r.Register(NewMicrophone(log, surfaces.MediaDevices))
	r.Register(NewGeolocation(log, surfaces.Geolocator, geoOpts))
	r.Register(NewMotionSensors(log, surfaces.MotionSensors))
	r.Register(NewFileSystem(log, surfaces.FileAccess))
	r.Register(NewNotifications(log, surfaces.Notifications, surfaces.ServiceWorkers))
	r.Register(NewAppSupport(log, surfaces.AppFeatures))
	r.Register(NewNetwork(log, surfaces.NetworkInfo))
	r.Register(NewPerformance(log, surfaces.TimingInfo))

	return r
}
