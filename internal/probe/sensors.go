package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// MotionSensors checks for motion/orientation event support, requesting the
// explicit permission grant where the platform demands one.
type MotionSensors struct {
	sensors platform.MotionSensors
	log     logrus.FieldLogger
}

// NewMotionSensors creates the motion sensor detector.
func NewMotionSensors(log logrus.FieldLogger, sensors platform.MotionSensors) *MotionSensors {
	return &MotionSensors{
		sensors: sensors,
		log:     log.WithField("probe", FeatureMotionSensors),
	}
}

// Name returns the capability name.
func (p *MotionSensors) Name() string { return FeatureMotionSensors }

// Probe verifies the motion event surface exists and, on platforms that gate
// it behind consent, that the grant is obtainable.
func (p *MotionSensors) Probe(ctx context.Context) Result {
	start := time.Now()

	if p.sensors == nil || !p.sensors.Available() {
		return failure(FeatureMotionSensors, platform.ErrUnsupported,
			"Motion events not present on this platform")
	}

	if !p.sensors.RequiresPermission() {
		return success(FeatureMotionSensors, start, "Motion events available")
	}

	state, err := p.sensors.RequestPermission(ctx)
	if err != nil {
		p.log.WithError(err).Debug("motion permission request failed")
		return failure(FeatureMotionSensors, err, "")
	}

	if state != platform.PermissionGranted {
		return failure(FeatureMotionSensors, platform.ErrPermissionDenied,
			fmt.Sprintf("Motion permission %s - events are gated behind user consent", state))
	}

	return success(FeatureMotionSensors, start, "Motion events available (permission granted)")
}
