// Package state persists the whole application state as a single JSON blob,
// the way the browser app kept everything under one local-storage key.
package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"planbook/internal/model"
)

// Store owns the state file. All mutations rewrite the full blob.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a store backed by the given file path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state blob. A missing, unreadable, or malformed file yields
// a fresh empty state: saved state is best-effort, never a startup blocker.
// A blob missing both the playbook and businessData keys is treated as
// malformed and discarded.
func (s *Store) Load() *model.AppState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read state file, starting fresh", "path", s.path, "error", err)
		}
		return &model.AppState{}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("state file is not valid JSON, starting fresh", "path", s.path, "error", err)
		return &model.AppState{}
	}
	if _, hasPlaybook := raw["playbook"]; !hasPlaybook {
		if _, hasBusiness := raw["businessData"]; !hasBusiness {
			s.logger.Warn("state file missing playbook and businessData, starting fresh", "path", s.path)
			return &model.AppState{}
		}
	}

	var st model.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Warn("state file does not match expected shape, starting fresh", "path", s.path, "error", err)
		return &model.AppState{}
	}
	return &st
}

// Save rewrites the blob atomically (temp file + rename) so a crash mid-write
// never leaves a truncated state file behind.
func (s *Store) Save(st *model.AppState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".planbook-state-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// SaveKpiEntry inserts or replaces the entry for its date and keeps the
// history sorted descending by date. Saving twice on the same date overwrites.
func (s *Store) SaveKpiEntry(st *model.AppState, entry model.KpiEntry) error {
	replaced := false
	for i := range st.KpiHistory {
		if st.KpiHistory[i].Date == entry.Date {
			st.KpiHistory[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		st.KpiHistory = append(st.KpiHistory, entry)
	}
	sort.Slice(st.KpiHistory, func(i, j int) bool {
		return st.KpiHistory[i].Date > st.KpiHistory[j].Date
	})
	return s.Save(st)
}

// AddWeeklyDebrief prepends the debrief (most recent first) and persists.
func (s *Store) AddWeeklyDebrief(st *model.AppState, d model.WeeklyDebrief) error {
	st.WeeklyDebriefs = append([]model.WeeklyDebrief{d}, st.WeeklyDebriefs...)
	return s.Save(st)
}
