package probe

import (
	"context"
	"time"

	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// FileSystem checks file access support. Basic support is universal through
// the file-input fallback, so this probe always passes; the interesting part
// is whether the native file-picker API is present.
type FileSystem struct {
	access platform.FileAccess
	log    logrus.FieldLogger
}

// NewFileSystem creates the file system detector.
func NewFileSystem(log logrus.FieldLogger, access platform.FileAccess) *FileSystem {
	return &FileSystem{
		access: access,
		log:    log.WithField("probe", FeatureFileSystem),
	}
}

// Name returns the capability name.
func (p *FileSystem) Name() string { return FeatureFileSystem }

// Probe distinguishes enhanced (native picker) from basic (input fallback)
// file access.
func (p *FileSystem) Probe(_ context.Context) Result {
	start := time.Now()

	notes := "Basic file input only"
	if p.access != nil && p.access.NativePickerAvailable() {
		notes = "Native file picker available (enhanced access)"
	}

	return success(FeatureFileSystem, start, notes)
}
