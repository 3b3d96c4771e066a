// Package archive accumulates named binary entries and compresses them into
// a single ZIP blob, reporting progress as entries are written.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Builder collects entries for one export run. Paths are unique; writing the
// same path twice silently replaces the earlier content, matching how output
// paths are generated upstream (they never collide in practice).
type Builder struct {
	order   []string
	entries map[string][]byte
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{entries: make(map[string][]byte)}
}

// AddEntry stores data under path, preserving the order entries arrived in.
func (b *Builder) AddEntry(path string, data []byte) {
	if _, exists := b.entries[path]; !exists {
		b.order = append(b.order, path)
	}
	b.entries[path] = data
}

// Len returns the number of accumulated entries.
func (b *Builder) Len() int {
	return len(b.order)
}

// Paths returns the entry paths in insertion order.
func (b *Builder) Paths() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Finalize compresses every entry into one ZIP blob. onProgress, if non-nil,
// is called with a 0-100 percentage after each entry is written.
func (b *Builder) Finalize(onProgress func(pct float64)) ([]byte, error) {
	if len(b.order) == 0 {
		return nil, fmt.Errorf("no entries to archive")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, path := range b.order {
		w, err := zw.Create(path)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to create archive entry %s: %w", path, err)
		}
		if _, err := w.Write(b.entries[path]); err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to write archive entry %s: %w", path, err)
		}
		if onProgress != nil {
			onProgress(float64(i+1) / float64(len(b.order)) * 100)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Reset drops every accumulated entry so the builder can serve a new run.
func (b *Builder) Reset() {
	b.order = nil
	b.entries = make(map[string][]byte)
}
