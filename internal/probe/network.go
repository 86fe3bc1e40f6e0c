package probe

import (
	"context"
	"strings"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// Network enumerates network awareness surfaces: connection info, online/
// offline events and an active service worker registration. At least one
// present surface makes the probe pass.
type Network struct {
	info platform.NetworkInfo
	log  logrus.FieldLogger
}

// NewNetwork creates the network awareness detector.
func NewNetwork(log logrus.FieldLogger, info platform.NetworkInfo) *Network {
	return &Network{
		info: info,
		log:  log.WithField("probe", FeatureNetwork),
	}
}

// Name returns the capability name.
func (p *Network) Name() string { return FeatureNetwork }

// Probe detects the network feature set.
func (p *Network) Probe(ctx context.Context) Result {
	start := time.Now()

	if p.info == nil {
		return failure(FeatureNetwork, platform.ErrUnsupported, "")
	}

	set, err := p.info.Detect(ctx)
	if err != nil {
		p.log.WithError(err).Debug("network feature detection failed")
		return failure(FeatureNetwork, err, "")
	}

	present := set.Present()
	if len(present) == 0 {
		return failure(FeatureNetwork, platform.ErrUnsupported,
			"No network awareness surfaces present")
	}

	return success(FeatureNetwork, start, "Available: "+strings.Join(present, ", "))
}
