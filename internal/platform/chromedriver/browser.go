// Package chromedriver binds the platform capability interfaces to a real
// headless Chrome driven over the DevTools protocol. Every capability check
// is a JavaScript expression evaluated in the browser page.
package chromedriver

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/probelab/browsercheck/internal/platform"
	"github.com/sirupsen/logrus"
)

// Options configures the browser launch.
type Options struct {
	// ExecPath points at a specific browser binary; empty uses the system
	// default lookup.
	ExecPath string
	// Headless runs without a visible window.
	Headless bool
}

// Browser is a live platform binding. Surfaces() exposes it as the full set
// of capability interfaces.
type Browser struct {
	ctx     context.Context
	cancels []context.CancelFunc
	log     logrus.FieldLogger
}

var (
	_ platform.Environment    = (*Browser)(nil)
	_ platform.MediaDevices   = (*Browser)(nil)
	_ platform.Geolocator     = (*Browser)(nil)
	_ platform.FileAccess     = (*Browser)(nil)
	_ platform.MotionSensors  = motionView{}
	_ platform.Notifications  = notificationView{}
	_ platform.ServiceWorkers = workerView{}
	_ platform.AppFeatures    = appView{}
	_ platform.NetworkInfo    = networkView{}
	_ platform.TimingInfo     = timingView{}
)

// Launch starts a browser and navigates to a blank page. Fake media flags
// are always set so camera and microphone checks do not hang on a native
// permission prompt.
func Launch(ctx context.Context, log logrus.FieldLogger, opts Options) (*Browser, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("use-fake-ui-for-media-stream", true),
		chromedp.Flag("use-fake-device-for-media-stream", true),
	)

	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}

	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		browserCancel()
		allocCancel()

		return nil, fmt.Errorf("launching browser: %w", err)
	}

	return &Browser{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{browserCancel, allocCancel},
		log:     log.WithField("component", "chromedriver"),
	}, nil
}

// Close tears the browser down.
func (b *Browser) Close() {
	for _, cancel := range b.cancels {
		cancel()
	}
}

// eval evaluates a JavaScript expression, awaiting promises, and decodes the
// JSON result into out. The caller context only contributes its deadline;
// evaluation always runs on the browser's own context chain.
func (b *Browser) eval(ctx context.Context, expr string, out interface{}) error {
	evalCtx := b.ctx

	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc

		evalCtx, cancel = context.WithDeadline(b.ctx, deadline)
		defer cancel()
	}

	return chromedp.Run(evalCtx, chromedp.Evaluate(expr, out,
		func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}))
}

// evalBool evaluates a boolean expression, degrading to false on error.
func (b *Browser) evalBool(expr string) bool {
	var result bool

	if err := b.eval(context.Background(), expr, &result); err != nil {
		b.log.WithError(err).WithField("expr", expr).Warn("boolean evaluation failed")
		return false
	}

	return result
}

// UserAgent implements platform.Environment.
func (b *Browser) UserAgent() string {
	var ua string

	if err := b.eval(context.Background(), `navigator.userAgent`, &ua); err != nil {
		b.log.WithError(err).Warn("user agent lookup failed")
		return ""
	}

	return ua
}

// Platform implements platform.Environment.
func (b *Browser) Platform() string {
	var p string

	if err := b.eval(context.Background(), `navigator.platform || 'Unknown'`, &p); err != nil {
		b.log.WithError(err).Warn("platform lookup failed")
		return "Unknown"
	}

	return p
}

// Standalone implements platform.Environment.
func (b *Browser) Standalone() bool {
	return b.evalBool(`window.matchMedia('(display-mode: standalone)').matches || window.navigator.standalone === true`)
}
