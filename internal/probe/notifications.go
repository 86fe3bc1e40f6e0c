package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// Notifications checks push notification readiness: both the notification
// API and service worker support must be present. The current permission
// state is recorded without ever forcing a prompt.
type Notifications struct {
	notif   platform.Notifications
	workers platform.ServiceWorkers
	log     logrus.FieldLogger
}

// NewNotifications creates the notification detector.
func NewNotifications(log logrus.FieldLogger, notif platform.Notifications, workers platform.ServiceWorkers) *Notifications {
	return &Notifications{
		notif:   notif,
		workers: workers,
		log:     log.WithField("probe", FeatureNotifications),
	}
}

// Name returns the capability name.
func (p *Notifications) Name() string { return FeatureNotifications }

// Probe verifies both required surfaces exist and reports the permission
// state in the notes.
func (p *Notifications) Probe(_ context.Context) Result {
	start := time.Now()

	notifOK := p.notif != nil && p.notif.Available()
	workersOK := p.workers != nil && p.workers.Available()

	switch {
	case !notifOK && !workersOK:
		return failure(FeatureNotifications, platform.ErrUnsupported,
			"Neither notification API nor service workers present")
	case !notifOK:
		return failure(FeatureNotifications, platform.ErrUnsupported,
			"Notification API not present")
	case !workersOK:
		return failure(FeatureNotifications, platform.ErrUnsupported,
			"Service workers not present - push delivery unavailable")
	}

	return success(FeatureNotifications, start,
		fmt.Sprintf("Notifications available (permission: %s)", p.notif.Permission()))
}
