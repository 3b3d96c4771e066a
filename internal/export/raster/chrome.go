package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// documentWidthPx is the CSS pixel width documents are laid out at,
// matching the .page width used by the document templates.
const documentWidthPx = 794

// ChromeRasterizer drives one headless Chrome page as the single off-screen
// render slot. Sequential use is enforced with a mutex: two overlapping
// renders would race on the shared page.
type ChromeRasterizer struct {
	mu      sync.Mutex
	browser *rod.Browser
	page    *rod.Page
	scale   float64
	timeout time.Duration
}

// ChromeOptions configures the rasterizer.
type ChromeOptions struct {
	// Bin is an optional Chrome/Chromium binary path. Empty means rod's
	// managed browser.
	Bin string

	// Scale is the device scale factor applied for print fidelity.
	Scale float64

	// Timeout bounds one render+capture step.
	Timeout time.Duration
}

// NewChrome launches a headless browser and opens the render page.
func NewChrome(opts ChromeOptions) (*ChromeRasterizer, error) {
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	l := launcher.New().Headless(true)
	if opts.Bin != "" {
		l = l.Bin(opts.Bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to open render page: %w", err)
	}

	return &ChromeRasterizer{
		browser: browser,
		page:    page,
		scale:   opts.Scale,
		timeout: opts.Timeout,
	}, nil
}

// Rasterize implements Rasterizer. WaitLoad is the explicit readiness signal:
// capture happens only after the document has finished loading, never after a
// fixed delay.
func (c *ChromeRasterizer) Rasterize(ctx context.Context, html string) (*Bitmap, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	page := c.page.Context(cctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to stage document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("document did not finish loading: %w", err)
	}

	err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             documentWidthPx,
		Height:            documentWidthPx, // height is ignored for full-page capture
		DeviceScaleFactor: c.scale,
		Mobile:            false,
	}).Call(page)
	if err != nil {
		return nil, fmt.Errorf("failed to set device metrics: %w", err)
	}

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture page: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("capture is not a decodable PNG: %w", err)
	}

	return &Bitmap{PNG: data, WidthPx: cfg.Width, HeightPx: cfg.Height}, nil
}

// Close implements Rasterizer.
func (c *ChromeRasterizer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	c.browser = nil
	c.page = nil
	return err
}
