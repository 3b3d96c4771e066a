// Package pdf wraps a bitmap into a one-page PDF sized to the bitmap,
// so print output matches the rendered document exactly.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/signintech/gopdf"
)

// Assembler builds single-page PDFs from rasterized documents.
type Assembler struct {
	// effective raster DPI; pixel dimensions are converted to PDF points
	// (72 per inch) with this density
	dpi float64
}

// NewAssembler creates an assembler for bitmaps captured at the given device
// scale factor (scale 1 = 96 DPI CSS pixels).
func NewAssembler(scale float64) *Assembler {
	if scale <= 0 {
		scale = 1
	}
	return &Assembler{dpi: 96 * scale}
}

// BuildSinglePage produces a one-page PDF whose page rect matches the
// bitmap's pixel dimensions at the assembler's density.
func (a *Assembler) BuildSinglePage(png []byte, widthPx, heightPx int) ([]byte, error) {
	if len(png) == 0 {
		return nil, fmt.Errorf("empty bitmap")
	}
	if widthPx < 1 || heightPx < 1 {
		return nil, fmt.Errorf("invalid bitmap dimensions %dx%d", widthPx, heightPx)
	}

	// Trust the decoded image over caller-supplied dimensions.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil {
		return nil, fmt.Errorf("failed to decode bitmap: %w", err)
	}
	if cfg.Width != widthPx || cfg.Height != heightPx {
		widthPx, heightPx = cfg.Width, cfg.Height
	}

	holder, err := gopdf.ImageHolderByBytes(png)
	if err != nil {
		return nil, fmt.Errorf("failed to create image holder: %w", err)
	}

	pageSize := gopdf.Rect{
		W: float64(widthPx) * 72 / a.dpi,
		H: float64(heightPx) * 72 / a.dpi,
	}

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: *gopdf.PageSizeA4})
	doc.AddPageWithOption(gopdf.PageOption{PageSize: &pageSize})
	if err := doc.ImageByHolder(holder, 0, 0, &pageSize); err != nil {
		return nil, fmt.Errorf("failed to place bitmap on page: %w", err)
	}

	return doc.GetBytesPdf(), nil
}
