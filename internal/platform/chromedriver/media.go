package chromedriver

import (
	"context"
	"errors"
	"fmt"

	"github.com/probelab/browsercheck/internal/platform"
)

// acquireStreamScript requests a media stream and parks it on a
// window-scoped table so individual tracks can be stopped later. Failures
// resolve (never reject) so the outcome always decodes into streamOutcome.
const acquireStreamScript = `(async () => {
	if (!navigator.mediaDevices || !navigator.mediaDevices.getUserMedia) {
		return {status: 'unsupported'};
	}
	try {
		const stream = await navigator.mediaDevices.getUserMedia({audio: %t, video: %t});
		window.__bcStreams = window.__bcStreams || {};
		const id = 's' + Date.now().toString(36) + Math.random().toString(36).slice(2);
		window.__bcStreams[id] = stream;
		return {
			status: 'ok',
			id: id,
			tracks: stream.getTracks().map(t => ({kind: t.kind, label: t.label}))
		};
	} catch (err) {
		const name = (err && err.name) || '';
		let status = 'error';
		if (name === 'NotAllowedError' || name === 'SecurityError') status = 'denied';
		if (name === 'NotFoundError' || name === 'OverconstrainedError') status = 'notfound';
		return {status: status, message: String(err)};
	}
})()`

// stopTrackScript stops one track of a parked stream.
const stopTrackScript = `(() => {
	const table = window.__bcStreams || {};
	const stream = table[%q];
	if (!stream) return false;
	const track = stream.getTracks()[%d];
	if (!track) return false;
	track.stop();
	return true;
})()`

type streamOutcome struct {
	Status  string `json:"status"`
	ID      string `json:"id"`
	Message string `json:"message"`
	Tracks  []struct {
		Kind  string `json:"kind"`
		Label string `json:"label"`
	} `json:"tracks"`
}

// AcquireStream implements platform.MediaDevices.
func (b *Browser) AcquireStream(ctx context.Context, constraints platform.StreamConstraints) (platform.MediaStream, error) {
	var outcome streamOutcome

	script := fmt.Sprintf(acquireStreamScript, constraints.Audio, constraints.Video)
	if err := b.eval(ctx, script, &outcome); err != nil {
		return nil, fmt.Errorf("evaluating stream acquisition: %w", err)
	}

	switch outcome.Status {
	case "ok":
	case "unsupported":
		return nil, fmt.Errorf("%w: mediaDevices.getUserMedia missing", platform.ErrUnsupported)
	case "denied":
		return nil, fmt.Errorf("%w: %s", platform.ErrPermissionDenied, outcome.Message)
	default:
		return nil, errors.New(outcome.Message)
	}

	stream := &remoteStream{browser: b, id: outcome.ID}

	for i, t := range outcome.Tracks {
		stream.tracks = append(stream.tracks, &remoteTrack{
			browser: b,
			stream:  outcome.ID,
			index:   i,
			kind:    t.Kind,
			label:   t.Label,
		})
	}

	return stream, nil
}

// remoteStream is a handle on a stream living in the browser page.
type remoteStream struct {
	browser *Browser
	id      string
	tracks  []platform.MediaTrack
}

func (s *remoteStream) Tracks() []platform.MediaTrack {
	return s.tracks
}

// remoteTrack addresses one track of a parked stream by index.
type remoteTrack struct {
	browser *Browser
	stream  string
	index   int
	kind    string
	label   string
}

func (t *remoteTrack) Kind() string  { return t.kind }
func (t *remoteTrack) Label() string { return t.label }

// Stop stops the remote track.
func (t *remoteTrack) Stop() error {
	var stopped bool

	script := fmt.Sprintf(stopTrackScript, t.stream, t.index)
	if err := t.browser.eval(context.Background(), script, &stopped); err != nil {
		return fmt.Errorf("stopping track: %w", err)
	}

	if !stopped {
		return fmt.Errorf("track %d of stream %s no longer present", t.index, t.stream)
	}

	return nil
}
