// Package raster turns rendered HTML documents into bitmaps.
package raster

import "context"

// Bitmap is a PNG capture of one document's full content.
type Bitmap struct {
	PNG      []byte
	WidthPx  int
	HeightPx int
}

// Rasterizer captures a document's full scrollable content as a bitmap.
// Implementations own a single render surface: callers must not overlap
// Rasterize calls, which the exporter's busy gate guarantees.
type Rasterizer interface {
	// Rasterize loads the HTML into the render surface, waits for it to
	// finish loading, and captures the full page.
	Rasterize(ctx context.Context, html string) (*Bitmap, error)

	// Close releases the render surface.
	Close() error
}
