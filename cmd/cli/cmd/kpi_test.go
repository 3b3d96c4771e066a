package cmd

import (
	"strings"
	"testing"

	"planbook/internal/logger"
	"planbook/internal/state"
)

func TestKpiSaveCommand_PersistsEntry(t *testing.T) {
	stateFile := useTempState(t)

	out := execute(t, "kpi", "save",
		"--date", "2026-08-28",
		"--set", "leads=24",
		"--set", "sales=3.5",
		"--notes", "slow week")
	if !strings.Contains(out, "Saved 2 value(s) for 2026-08-28") {
		t.Errorf("unexpected output: %s", out)
	}

	st := state.New(stateFile, logger.New()).Load()
	if len(st.KpiHistory) != 1 {
		t.Fatalf("expected 1 KPI entry, got %d", len(st.KpiHistory))
	}
	entry := st.KpiHistory[0]
	if entry.Values["leads"] != 24 || entry.Values["sales"] != 3.5 {
		t.Errorf("values = %v", entry.Values)
	}
	if entry.Notes != "slow week" {
		t.Errorf("notes = %q", entry.Notes)
	}
}

func TestKpiSaveCommand_RejectsBadInput(t *testing.T) {
	useTempState(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no values", args: []string{"kpi", "save", "--set", ""}, want: "key=value"},
		{name: "bad number", args: []string{"kpi", "save", "--set", "leads=lots"}, want: "not a number"},
		{name: "bad date", args: []string{"kpi", "save", "--date", "28/08/2026", "--set", "leads=1"}, want: "YYYY-MM-DD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err, _ := executeErr(t, tt.args...)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in error, got: %v", tt.want, err)
			}
		})
	}
}

func TestKpiListCommand_Empty(t *testing.T) {
	useTempState(t)

	out := execute(t, "kpi", "list")
	if !strings.Contains(out, "No KPI entries yet") {
		t.Errorf("unexpected output: %s", out)
	}
}
