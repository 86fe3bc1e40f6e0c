package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// defaultGeoTimeout bounds the position wait when no explicit timeout is
// configured. Geolocation is the only probe with its own timeout; every
// other probe relies on the underlying platform's settlement behavior.
const defaultGeoTimeout = 10 * time.Second

// Geolocation checks whether a position fix can be obtained within a bound.
type Geolocation struct {
	geo  platform.Geolocator
	opts platform.PositionOptions
	log  logrus.FieldLogger
}

// NewGeolocation creates the geolocation detector. A zero opts.Timeout falls
// back to the 10s default; HighAccuracy stays off to keep the fix cheap.
func NewGeolocation(log logrus.FieldLogger, geo platform.Geolocator, opts platform.PositionOptions) *Geolocation {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultGeoTimeout
	}

	return &Geolocation{
		geo:  geo,
		opts: opts,
		log:  log.WithField("probe", FeatureGeolocation),
	}
}

// Name returns the capability name.
func (p *Geolocation) Name() string { return FeatureGeolocation }

// Probe requests the current position and fails if the platform does not
// settle before the timeout.
func (p *Geolocation) Probe(ctx context.Context) Result {
	start := time.Now()

	if p.geo == nil {
		return failure(FeatureGeolocation, platform.ErrUnsupported, "")
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	pos, err := p.geo.CurrentPosition(ctx, p.opts)
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w after %s", platform.ErrTimeout, p.opts.Timeout)
		}

		p.log.WithError(err).Debug("position request failed")

		return failure(FeatureGeolocation, err, "")
	}

	return success(FeatureGeolocation, start,
		fmt.Sprintf("Position acquired (accuracy %.0fm)", pos.AccuracyMeters))
}
