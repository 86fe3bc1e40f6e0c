package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppFeatureSet_Present(t *testing.T) {
	t.Parallel()

	assert.Empty(t, AppFeatureSet{}.Present())

	full := AppFeatureSet{
		ServiceWorker:  true,
		InstallSupport: true,
		PushMessaging:  true,
		BackgroundSync: true,
		CacheStorage:   true,
	}

	assert.Equal(t, []string{
		"service worker",
		"install support",
		"push messaging",
		"background sync",
		"cache storage",
	}, full.Present())
}

func TestNetworkFeatureSet_Present(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NetworkFeatureSet{}.Present())

	assert.Equal(t, []string{
		"connection info",
		"online/offline events",
		"active service worker",
	}, NetworkFeatureSet{ConnectionInfo: true, OnlineEvents: true, ActiveServiceWkr: true}.Present())
}

func TestTimingFeatureSet_Present(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"high-resolution time",
		"navigation timing",
		"resource timing",
		"user timing",
		"memory info",
	}, TimingFeatureSet{
		Now:              true,
		NavigationTiming: true,
		ResourceTiming:   true,
		UserTiming:       true,
		MemoryInfo:       true,
	}.Present())
}
