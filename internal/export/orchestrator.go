// Package export drives the document export pipeline: render, rasterize,
// assemble a one-page PDF, and for bulk runs accumulate everything into one
// ZIP archive. The pipeline owns a single render surface, so exports are
// strictly sequential and gated by a busy flag.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"planbook/internal/docs"
	"planbook/internal/export/raster"
	"planbook/internal/logger"
)

// ErrExportBusy is returned when an export is requested while another one is
// in flight. Requests are dropped, never queued.
var ErrExportBusy = errors.New("an export is already in progress")

// Phase is the orchestrator's position in the pipeline state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRendering
	PhaseRasterizing
	PhaseAssembling
	PhaseFinalizing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRendering:
		return "rendering"
	case PhaseRasterizing:
		return "rasterizing"
	case PhaseAssembling:
		return "assembling"
	case PhaseFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

// Renderer produces the HTML for one document.
type Renderer interface {
	Render(t docs.DocumentType, ctx docs.Context) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(t docs.DocumentType, ctx docs.Context) (string, error)

func (f RendererFunc) Render(t docs.DocumentType, ctx docs.Context) (string, error) {
	return f(t, ctx)
}

// PageAssembler wraps a bitmap into a one-page document.
type PageAssembler interface {
	BuildSinglePage(png []byte, widthPx, heightPx int) ([]byte, error)
}

// Archiver accumulates named entries and compresses them on Finalize.
type Archiver interface {
	AddEntry(path string, data []byte)
	Len() int
	Finalize(onProgress func(pct float64)) ([]byte, error)
	Reset()
}

// Saver writes a finished artifact to its destination and returns its path.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// FileSaver saves artifacts into a directory.
type FileSaver struct {
	Dir string
}

func (s FileSaver) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	return path, nil
}

// Options configures an Orchestrator.
type Options struct {
	Renderer   Renderer
	Rasterizer raster.Rasterizer
	Pages      PageAssembler
	NewArchive func() Archiver
	Saver      Saver
	Logger     *slog.Logger

	// Progress observers; both receive 0-100 values. Single-document and
	// bulk progress are tracked separately so the UI can label them.
	OnSingleProgress func(pct float64)
	OnBulkProgress   func(pct float64)
}

// Orchestrator owns the export job queue, the single render slot, and the
// busy/progress state. At most one export (single or bulk) runs at a time.
type Orchestrator struct {
	renderer   Renderer
	rasterizer raster.Rasterizer
	pages      PageAssembler
	newArchive func() Archiver
	saver      Saver
	logger     *slog.Logger

	onSingleProgress func(pct float64)
	onBulkProgress   func(pct float64)

	mu             sync.Mutex
	singleBusy     bool
	bulkBusy       bool
	phase          Phase
	singleProgress float64
	bulkProgress   float64
}

// New creates an orchestrator. Renderer defaults to the document registry.
func New(opts Options) *Orchestrator {
	if opts.Renderer == nil {
		opts.Renderer = RendererFunc(docs.Render)
	}
	if opts.Logger == nil {
		opts.Logger = logger.New()
	}
	return &Orchestrator{
		renderer:         opts.Renderer,
		rasterizer:       opts.Rasterizer,
		pages:            opts.Pages,
		newArchive:       opts.NewArchive,
		saver:            opts.Saver,
		logger:           opts.Logger,
		onSingleProgress: opts.OnSingleProgress,
		onBulkProgress:   opts.OnBulkProgress,
	}
}

// Phase returns the current pipeline phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// SingleProgress returns the last reported single-export percentage.
func (o *Orchestrator) SingleProgress() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.singleProgress
}

// BulkProgress returns the last reported bulk-export percentage.
func (o *Orchestrator) BulkProgress() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.bulkProgress
}

// tryBegin claims the busy gate. Both export modes share it: the render slot
// cannot serve two pipelines.
func (o *Orchestrator) tryBegin(bulk bool) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.singleBusy || o.bulkBusy {
		return false
	}
	if bulk {
		o.bulkBusy = true
		o.bulkProgress = 0
	} else {
		o.singleBusy = true
		o.singleProgress = 0
	}
	return true
}

// end releases the busy gate and returns the orchestrator to idle. It runs
// on every exit path so a failed export can never leave the gate stuck.
func (o *Orchestrator) end() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.singleBusy = false
	o.bulkBusy = false
	o.phase = PhaseIdle
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

// reportSingle records single-export progress; values never move backwards
// within a run.
func (o *Orchestrator) reportSingle(pct float64) {
	o.mu.Lock()
	if pct > o.singleProgress {
		o.singleProgress = pct
	}
	pct = o.singleProgress
	cb := o.onSingleProgress
	o.mu.Unlock()
	if cb != nil {
		cb(pct)
	}
}

func (o *Orchestrator) reportBulk(pct float64) {
	o.mu.Lock()
	if pct > o.bulkProgress {
		o.bulkProgress = pct
	}
	pct = o.bulkProgress
	cb := o.onBulkProgress
	o.mu.Unlock()
	if cb != nil {
		cb(pct)
	}
}

// singleFilename derives the saved filename for a single-document export.
func singleFilename(t docs.DocumentType, ctx docs.Context) string {
	switch t {
	case docs.DocSingleAsset:
		if ctx.SingleAsset != nil {
			return SanitizeName(ctx.SingleAsset.Name) + ".pdf"
		}
	case docs.DocAssetBundle:
		if ctx.AssetBundle != nil {
			return SanitizeName(ctx.AssetBundle.Name) + ".pdf"
		}
	}
	return string(t) + ".pdf"
}

// ExportSingle renders one document, rasterizes it, wraps it in a one-page
// PDF and saves it. Progress checkpoints: 50 after rasterization, 80 after
// assembly, 100 after save.
func (o *Orchestrator) ExportSingle(ctx context.Context, t docs.DocumentType, dctx docs.Context) (string, error) {
	if !o.tryBegin(false) {
		return "", ErrExportBusy
	}
	defer o.end()

	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	lg := logger.FromContext(ctx, o.logger)

	path, err := o.produceSingle(ctx, t, dctx)
	if err != nil {
		lg.Error("error creating your PDF", "document", t, "error", err)
		return "", fmt.Errorf("error creating your PDF: %w", err)
	}
	lg.Info("document exported", "document", t, "path", path)
	return path, nil
}

func (o *Orchestrator) produceSingle(ctx context.Context, t docs.DocumentType, dctx docs.Context) (string, error) {
	o.setPhase(PhaseRendering)
	html, err := o.renderer.Render(t, dctx)
	if err != nil {
		return "", err
	}
	if docs.IsEmpty(html) {
		return "", fmt.Errorf("document %s rendered no content", t)
	}

	o.setPhase(PhaseRasterizing)
	bm, err := o.rasterizer.Rasterize(ctx, html)
	if err != nil {
		return "", err
	}
	o.reportSingle(50)

	o.setPhase(PhaseAssembling)
	data, err := o.pages.BuildSinglePage(bm.PNG, bm.WidthPx, bm.HeightPx)
	if err != nil {
		return "", err
	}
	o.reportSingle(80)

	path, err := o.saver.Save(singleFilename(t, dctx), data)
	if err != nil {
		return "", err
	}
	o.reportSingle(100)
	return path, nil
}

// BulkResult summarizes one bulk export run.
type BulkResult struct {
	RunID       string
	ArchivePath string
	Total       int
	Succeeded   int
	Failed      int
}

// archiveName is the filename of the bulk-export ZIP.
const archiveName = "Business_Playbook_Kit.zip"

// RunBulk builds a fresh job queue from the playbook, drains it one job at a
// time through the shared render slot, and downloads the resulting archive.
// Per-job failures are reported and skipped: the archive is still produced,
// missing only the failed entries. Job progress occupies 0-95%; the final 5%
// tracks archive compression.
func (o *Orchestrator) RunBulk(ctx context.Context, dctx docs.Context) (*BulkResult, error) {
	if !o.tryBegin(true) {
		return nil, ErrExportBusy
	}
	defer o.end()

	if dctx.Playbook == nil {
		return nil, fmt.Errorf("no playbook to export")
	}

	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	lg := logger.FromContext(ctx, o.logger)

	queue := BuildQueue(dctx.Playbook)
	arch := o.newArchive()
	result := &BulkResult{RunID: runID, Total: len(queue)}

	lg.Info("bulk export started", "jobs", len(queue))

	for cursor := 0; cursor < len(queue); cursor++ {
		job := queue[cursor]
		if err := o.produceJob(ctx, job, dctx, arch); err != nil {
			// Per-job failures do not halt the queue; the entry is
			// simply absent from the archive.
			result.Failed++
			lg.Error("export job failed", "document", job.Doc, "path", job.OutputPath, "error", err)
		} else {
			result.Succeeded++
		}
		o.reportBulk(float64(cursor+1) / float64(len(queue)) * 95)
	}

	o.setPhase(PhaseFinalizing)
	if arch.Len() == 0 {
		return nil, fmt.Errorf("every export job failed, nothing to archive")
	}

	blob, err := arch.Finalize(func(pct float64) {
		o.reportBulk(95 + pct*0.05)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}

	path, err := o.saver.Save(archiveName, blob)
	if err != nil {
		return nil, err
	}
	arch.Reset()
	o.reportBulk(100)

	result.ArchivePath = path
	lg.Info("bulk export finished", "path", path, "succeeded", result.Succeeded, "failed", result.Failed)
	return result, nil
}

// produceJob runs one queue entry through the pipeline and stores the result
// in the archive under the job's output path.
func (o *Orchestrator) produceJob(ctx context.Context, job Job, dctx docs.Context, arch Archiver) error {
	jctx := dctx
	jctx.SingleAsset = job.Asset
	jctx.AssetBundle = job.Offer

	o.setPhase(PhaseRendering)
	html, err := o.renderer.Render(job.Doc, jctx)
	if err != nil {
		return err
	}
	if docs.IsEmpty(html) {
		// An empty render slot is a counted, reported failure, not a
		// silent skip.
		return fmt.Errorf("document %s rendered no content", job.Doc)
	}

	o.setPhase(PhaseRasterizing)
	bm, err := o.rasterizer.Rasterize(ctx, html)
	if err != nil {
		return err
	}

	o.setPhase(PhaseAssembling)
	data, err := o.pages.BuildSinglePage(bm.PNG, bm.WidthPx, bm.HeightPx)
	if err != nil {
		return err
	}

	arch.AddEntry(job.OutputPath, data)
	return nil
}
