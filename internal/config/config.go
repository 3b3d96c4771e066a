// Package config handles environment variable loading for paths, AI provider
// settings, and export tuning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration values for the application.
type Config struct {
	// Path of the single JSON state blob
	StateFile string

	// Directory exports (PDFs, ZIP, offline HTML) are written to
	ExportDir string

	// AI provider type: "anthropic", "openai" or "openai_compatible"
	AIProvider string

	// Model identifier passed to the provider
	AIModel string

	// API key for the provider; commands that call the provider fail without it
	AIAPIKey string

	// Optional base URL override for the provider
	AIBaseURL string

	// Per-request timeout for generation calls
	AITimeout time.Duration

	// Base URL of the promo-video rendering service
	VideoServiceURL string

	// Device scale factor applied when rasterizing documents
	RenderScale float64

	// Timeout for a single document render+rasterize step
	RenderTimeout time.Duration

	// Optional path to a Chrome/Chromium binary for the rasterizer
	BrowserBin string

	// Maximum concurrent asset-content generation calls
	AssetConcurrency int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	stateFile := os.Getenv("PLANBOOK_STATE_FILE")
	if stateFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory for default state file: %w", err)
		}
		stateFile = filepath.Join(home, ".planbook", "state.json")
	}

	exportDir := os.Getenv("PLANBOOK_EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}

	provider := os.Getenv("PLANBOOK_AI_PROVIDER")
	if provider == "" {
		provider = "anthropic"
	}

	aiModel := os.Getenv("PLANBOOK_AI_MODEL")
	if aiModel == "" {
		aiModel = "claude-sonnet-4-20250514"
	}

	aiTimeout := 2 * time.Minute
	if v := os.Getenv("PLANBOOK_AI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PLANBOOK_AI_TIMEOUT: %w", err)
		}
		aiTimeout = d
	}

	renderScale := 2.0
	if v := os.Getenv("PLANBOOK_RENDER_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PLANBOOK_RENDER_SCALE: %w", err)
		}
		if f <= 0 {
			return nil, fmt.Errorf("PLANBOOK_RENDER_SCALE must be greater than 0")
		}
		renderScale = f
	}

	renderTimeout := 30 * time.Second
	if v := os.Getenv("PLANBOOK_RENDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PLANBOOK_RENDER_TIMEOUT: %w", err)
		}
		renderTimeout = d
	}

	assetConcurrency := 4
	if v := os.Getenv("PLANBOOK_ASSET_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PLANBOOK_ASSET_CONCURRENCY: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("PLANBOOK_ASSET_CONCURRENCY must be greater than 0")
		}
		assetConcurrency = n
	}

	return &Config{
		StateFile:        stateFile,
		ExportDir:        exportDir,
		AIProvider:       provider,
		AIModel:          aiModel,
		AIAPIKey:         os.Getenv("PLANBOOK_AI_API_KEY"),
		AIBaseURL:        os.Getenv("PLANBOOK_AI_BASE_URL"),
		AITimeout:        aiTimeout,
		VideoServiceURL:  os.Getenv("PLANBOOK_VIDEO_URL"),
		RenderScale:      renderScale,
		RenderTimeout:    renderTimeout,
		BrowserBin:       os.Getenv("PLANBOOK_BROWSER_BIN"),
		AssetConcurrency: assetConcurrency,
	}, nil
}
