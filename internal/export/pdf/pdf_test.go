package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 180, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestBuildSinglePage_ProducesPDF(t *testing.T) {
	a := NewAssembler(2)

	data := testPNG(t, 320, 640)
	out, err := a.BuildSinglePage(data, 320, 640)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty PDF bytes")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF, starts with %q", out[:4])
	}
}

func TestBuildSinglePage_RejectsEmptyBitmap(t *testing.T) {
	a := NewAssembler(2)

	if _, err := a.BuildSinglePage(nil, 100, 100); err == nil {
		t.Error("expected error for empty bitmap")
	}
}

func TestBuildSinglePage_RejectsGarbage(t *testing.T) {
	a := NewAssembler(2)

	if _, err := a.BuildSinglePage([]byte("not a png"), 100, 100); err == nil {
		t.Error("expected error for undecodable bitmap")
	}
}

func TestBuildSinglePage_RejectsInvalidDimensions(t *testing.T) {
	a := NewAssembler(2)

	if _, err := a.BuildSinglePage(testPNG(t, 10, 10), 0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestBuildSinglePage_UsesDecodedDimensions(t *testing.T) {
	a := NewAssembler(1)

	// Caller claims the wrong size; the decoded size wins and assembly
	// still succeeds.
	out, err := a.BuildSinglePage(testPNG(t, 50, 80), 999, 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected non-empty PDF bytes")
	}
}
