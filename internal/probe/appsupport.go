package probe

import (
	"context"
	"strings"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// AppSupport enumerates progressive-app surfaces. The probe passes when at
// least one surface is present; the notes list the present subset.
type AppSupport struct {
	features platform.AppFeatures
	log      logrus.FieldLogger
}

// NewAppSupport creates the progressive-app detector.
func NewAppSupport(log logrus.FieldLogger, features platform.AppFeatures) *AppSupport {
	return &AppSupport{
		features: features,
		log:      log.WithField("probe", FeatureAppSupport),
	}
}

// Name returns the capability name.
func (p *AppSupport) Name() string { return FeatureAppSupport }

// Probe detects the progressive-app feature set.
func (p *AppSupport) Probe(ctx context.Context) Result {
	start := time.Now()

	if p.features == nil {
		return failure(FeatureAppSupport, platform.ErrUnsupported, "")
	}

	set, err := p.features.Detect(ctx)
	if err != nil {
		p.log.WithError(err).Debug("app feature detection failed")
		return failure(FeatureAppSupport, err, "")
	}

	present := set.Present()
	if len(present) == 0 {
		return failure(FeatureAppSupport, platform.ErrUnsupported,
			"No progressive app surfaces present")
	}

	return success(FeatureAppSupport, start, "Available: "+strings.Join(present, ", "))
}
