package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"planbook/internal/config"
	"planbook/internal/export"
	"planbook/internal/export/archive"
	"planbook/internal/export/pdf"
	"planbook/internal/export/raster"
	"planbook/internal/genai"
	"planbook/internal/logger"
	"planbook/internal/state"
)

// appEnv bundles the dependencies every command needs: resolved config, the
// shared logger and the state store.
type appEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *state.Store
}

// loadApp resolves configuration (environment first, then flag overrides)
// and opens the state store.
func loadApp() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if v := viper.GetString("state_file"); v != "" {
		cfg.StateFile = v
	}
	if v := viper.GetString("export_dir"); v != "" {
		cfg.ExportDir = v
	}

	lg := logger.New()
	return &appEnv{
		cfg:    cfg,
		logger: lg,
		store:  state.New(cfg.StateFile, lg),
	}, nil
}

// newGenerator builds the AI generator, failing early when no API key is set.
func (a *appEnv) newGenerator() (*genai.Generator, error) {
	if a.cfg.AIAPIKey == "" {
		return nil, fmt.Errorf("no AI API key set; set PLANBOOK_AI_API_KEY or add it to .env")
	}
	provider, err := genai.NewProvider(a.cfg.AIProvider, a.cfg.AIModel, a.cfg.AIBaseURL, a.cfg.AIAPIKey)
	if err != nil {
		return nil, err
	}
	return genai.NewGenerator(provider, a.logger, a.cfg.AssetConcurrency), nil
}

// newOrchestrator wires the full export pipeline: headless-browser
// rasterizer, PDF assembler, ZIP builder and the export directory saver.
// The caller must Close the returned rasterizer.
func (a *appEnv) newOrchestrator(onProgress func(pct float64)) (*export.Orchestrator, raster.Rasterizer, error) {
	rast, err := raster.NewChrome(raster.ChromeOptions{
		Bin:     a.cfg.BrowserBin,
		Scale:   a.cfg.RenderScale,
		Timeout: a.cfg.RenderTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start the renderer: %w", err)
	}

	orch := export.New(export.Options{
		Rasterizer:       rast,
		Pages:            pdf.NewAssembler(a.cfg.RenderScale),
		NewArchive:       func() export.Archiver { return archive.New() },
		Saver:            export.FileSaver{Dir: a.cfg.ExportDir},
		Logger:           a.logger,
		OnSingleProgress: onProgress,
		OnBulkProgress:   onProgress,
	})
	return orch, rast, nil
}
