package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planbook/internal/docs"
	"planbook/internal/logger"
	"planbook/internal/model"
	"planbook/internal/state"
)

func seedPlaybook(t *testing.T, stateFile string) {
	t.Helper()

	store := state.New(stateFile, logger.New())
	st := store.Load()
	st.BusinessData = model.BusinessData{BusinessType: "gym", Location: "Austin, TX"}
	st.Playbook = &model.GeneratedPlaybook{
		Diagnosis: model.Diagnosis{CurrentStage: "Improvise", YourRole: "operator"},
		Offer1: model.Offer{
			Name:  "Transformation Program",
			Price: "$500",
			Stack: []model.OfferStackItem{
				{Problem: "no plan", Solution: "coaching", Value: "$300",
					Asset: &model.Asset{Name: "Meal Plan", Type: "template", Content: "# Meal Plan"}},
			},
		},
		Offer2:   model.Offer{Name: "Group Classes", Price: "$99"},
		Downsell: model.Downsell{Offer: model.Offer{Name: "Trial Week", Price: "$29"}},
	}
	if err := store.Save(st); err != nil {
		t.Fatalf("seeding state failed: %v", err)
	}
}

func TestExportPdfCommand_UnknownDocument(t *testing.T) {
	useTempState(t)

	err, _ := executeErr(t, "export", "pdf", "does-not-exist")
	if !strings.Contains(err.Error(), "unknown document") {
		t.Errorf("expected unknown-document error, got: %v", err)
	}
}

func TestExportCommands_RequirePlaybook(t *testing.T) {
	useTempState(t)

	for _, args := range [][]string{
		{"export", "pdf", "full"},
		{"export", "zip"},
		{"export", "html"},
	} {
		err, _ := executeErr(t, args...)
		if !strings.Contains(err.Error(), "no playbook found") {
			t.Errorf("%v: expected missing-playbook error, got: %v", args, err)
		}
	}
}

func TestExportHtmlCommand_WritesPage(t *testing.T) {
	stateFile := useTempState(t)
	seedPlaybook(t, stateFile)

	out := execute(t, "export", "html")
	if !strings.Contains(out, "Saved") {
		t.Fatalf("expected save confirmation, got: %s", out)
	}

	path := filepath.Join(filepath.Dir(stateFile), "exports", "Business_Playbook.html")
	page, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("offline page not written: %v", err)
	}
	if !strings.Contains(string(page), "Transformation Program") {
		t.Error("offline page does not contain the playbook content")
	}
}

func TestBuildDocContext_AssetSelectors(t *testing.T) {
	stateFile := useTempState(t)
	seedPlaybook(t, stateFile)

	app, err := loadApp()
	if err != nil {
		t.Fatalf("loadApp() error: %v", err)
	}

	resetFlags(rootCmd)
	flags := exportPdfCmd.Flags()

	// Asset documents without a selector are rejected.
	if _, err := buildDocContext(exportPdfCmd, app, docs.DocAssetBundle); err == nil {
		t.Error("expected error when --offer is missing")
	}

	flags.Set("offer", "Transformation Program")
	if _, err := buildDocContext(exportPdfCmd, app, docs.DocSingleAsset); err == nil {
		t.Error("expected error when --asset is missing")
	}

	flags.Set("asset", "Meal Plan")
	dctx, err := buildDocContext(exportPdfCmd, app, docs.DocSingleAsset)
	if err != nil {
		t.Fatalf("buildDocContext() error: %v", err)
	}
	if dctx.SingleAsset == nil || dctx.SingleAsset.Name != "Meal Plan" {
		t.Errorf("single asset not resolved: %+v", dctx.SingleAsset)
	}
	if dctx.AssetBundle == nil || dctx.AssetBundle.Name != "Transformation Program" {
		t.Errorf("asset bundle not resolved: %+v", dctx.AssetBundle)
	}

	flags.Set("asset", "No Such Asset")
	if _, err := buildDocContext(exportPdfCmd, app, docs.DocSingleAsset); err == nil {
		t.Error("expected error for unknown asset name")
	}
}
