package state

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"planbook/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return New(filepath.Join(dir, "state.json"), logger)
}

func samplePlaybook() *model.GeneratedPlaybook {
	return &model.GeneratedPlaybook{
		Diagnosis: model.Diagnosis{CurrentStage: "Improve", YourRole: "Owner"},
		Offer1: model.Offer{
			Name:  "Growth Accelerator",
			Price: "$2,500",
			Stack: []model.OfferStackItem{
				{Problem: "No leads", Solution: "Outreach system", Value: "$1,000"},
			},
		},
		Offer2: model.Offer{Name: "Starter Pack", Price: "$500"},
	}
}

func TestLoad_MissingFileYieldsEmptyState(t *testing.T) {
	s := newTestStore(t)

	st := s.Load()
	if st == nil {
		t.Fatal("expected non-nil state")
	}
	if st.Playbook != nil || st.BusinessData != (model.BusinessData{}) {
		t.Errorf("expected empty state, got %+v", st)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	st := &model.AppState{
		BusinessData: model.BusinessData{BusinessType: "bakery", Location: "Lisbon"},
		Playbook:     samplePlaybook(),
		KpiHistory: []model.KpiEntry{
			{Date: "2026-08-20", Values: map[string]float64{"leads": 12}},
		},
		WeeklyDebriefs: []model.WeeklyDebrief{
			{Date: "2026-08-21", Summary: "good week", Advice: "keep going"},
		},
	}

	if err := s.Save(st); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded := s.Load()
	if !reflect.DeepEqual(st, loaded) {
		t.Errorf("round-trip mismatch:\nsaved:  %+v\nloaded: %+v", st, loaded)
	}
}

func TestLoad_CorruptJSONDiscarded(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	st := s.Load()
	if st.Playbook != nil || st.BusinessData != (model.BusinessData{}) || len(st.KpiHistory) != 0 {
		t.Errorf("expected empty state for corrupt file, got %+v", st)
	}
}

func TestLoad_MissingRequiredKeysDiscarded(t *testing.T) {
	s := newTestStore(t)

	// Valid JSON but neither playbook nor businessData present.
	if err := os.WriteFile(s.Path(), []byte(`{"kpiHistory":[{"date":"2026-01-01"}]}`), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	st := s.Load()
	if len(st.KpiHistory) != 0 {
		t.Errorf("expected malformed blob to be discarded, got %+v", st)
	}
}

func TestLoad_BusinessDataOnlyIsAccepted(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.Path(), []byte(`{"businessData":{"business_type":"gym"}}`), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	st := s.Load()
	if st.BusinessData.BusinessType != "gym" {
		t.Errorf("expected businessData-only blob to load, got %+v", st)
	}
}

func TestSaveLoad_FreshStateSurvives(t *testing.T) {
	s := newTestStore(t)

	// A brand-new state always carries the businessData key, so saving
	// before anything is filled in must not trip the discard rule.
	if err := s.Save(&model.AppState{}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	st := s.Load()
	if st.Playbook != nil || st.BusinessData != (model.BusinessData{}) {
		t.Errorf("expected fresh state to round-trip empty, got %+v", st)
	}
}

func TestSaveLoad_PlanOnlyStateSurvives(t *testing.T) {
	s := newTestStore(t)

	st := &model.AppState{BusinessData: model.BusinessData{BusinessType: "gym"}}
	if err := s.Save(st); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded := s.Load()
	if loaded.BusinessData.BusinessType != "gym" {
		t.Errorf("expected pre-generation plan to survive reload, got %+v", loaded)
	}
	if loaded.Playbook != nil {
		t.Errorf("expected no playbook, got %+v", loaded.Playbook)
	}
}

func TestSaveKpiEntry_SameDateReplaces(t *testing.T) {
	s := newTestStore(t)
	st := &model.AppState{Playbook: samplePlaybook()}

	first := model.KpiEntry{Date: "2026-08-25", Values: map[string]float64{"leads": 5}}
	second := model.KpiEntry{Date: "2026-08-25", Values: map[string]float64{"leads": 9}}

	if err := s.SaveKpiEntry(st, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveKpiEntry(st, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(st.KpiHistory) != 1 {
		t.Fatalf("expected 1 entry after same-date save, got %d", len(st.KpiHistory))
	}
	if st.KpiHistory[0].Values["leads"] != 9 {
		t.Errorf("expected second save to replace first, got %v", st.KpiHistory[0].Values)
	}
}

func TestSaveKpiEntry_SortedDescending(t *testing.T) {
	s := newTestStore(t)
	st := &model.AppState{Playbook: samplePlaybook()}

	dates := []string{"2026-08-10", "2026-08-25", "2026-08-17"}
	for _, d := range dates {
		if err := s.SaveKpiEntry(st, model.KpiEntry{Date: d}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []string{"2026-08-25", "2026-08-17", "2026-08-10"}
	for i, w := range want {
		if st.KpiHistory[i].Date != w {
			t.Errorf("position %d: expected %s, got %s", i, w, st.KpiHistory[i].Date)
		}
	}

	// Persisted order must match too.
	loaded := s.Load()
	for i, w := range want {
		if loaded.KpiHistory[i].Date != w {
			t.Errorf("persisted position %d: expected %s, got %s", i, w, loaded.KpiHistory[i].Date)
		}
	}
}

func TestAddWeeklyDebrief_PrependsMostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	st := &model.AppState{Playbook: samplePlaybook()}

	if err := s.AddWeeklyDebrief(st, model.WeeklyDebrief{Date: "2026-08-14", Summary: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AddWeeklyDebrief(st, model.WeeklyDebrief{Date: "2026-08-21", Summary: "second"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(st.WeeklyDebriefs) != 2 {
		t.Fatalf("expected 2 debriefs, got %d", len(st.WeeklyDebriefs))
	}
	if st.WeeklyDebriefs[0].Summary != "second" {
		t.Errorf("expected most recent debrief first, got %s", st.WeeklyDebriefs[0].Summary)
	}
}
