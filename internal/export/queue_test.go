package export

import (
	"fmt"
	"strings"
	"testing"

	"planbook/internal/docs"
	"planbook/internal/model"
)

// scenarioPlaybook matches the end-to-end scenario: two offers with 3 stack
// items with assets each, plus a downsell offer with 2, for a 20-job queue.
func scenarioPlaybook() *model.GeneratedPlaybook {
	offerWithAssets := func(name string, assets int) model.Offer {
		o := model.Offer{Name: name, Price: "$100"}
		for i := 0; i < assets; i++ {
			o.Stack = append(o.Stack, model.OfferStackItem{
				Problem:  "problem",
				Solution: "solution",
				Value:    "$10",
				Asset: &model.Asset{
					Name:    fmt.Sprintf("%s Asset %d", name, i+1),
					Type:    "template",
					Content: "# Asset\n\ncontent",
				},
			})
		}
		return o
	}

	return &model.GeneratedPlaybook{
		MoneyModel: model.MoneyModel{
			Title:       "Client-Financed Acquisition",
			Description: "Get paid to acquire customers.",
			Steps: []model.MoneyModelStep{
				{StepNumber: 1, Title: "Attract", OfferName: "offer1", Price: "$100", Rationale: "fast yes"},
			},
		},
		Offer1: offerWithAssets("offer1", 3),
		Offer2: offerWithAssets("offer2", 3),
		Downsell: model.Downsell{
			Offer: offerWithAssets("downsell offer", 2),
		},
	}
}

func TestBuildQueue_ScenarioJobCount(t *testing.T) {
	queue := BuildQueue(scenarioPlaybook())

	// 9 fixed core docs + 3 bundles + 8 individual assets.
	if len(queue) != 20 {
		t.Fatalf("expected 20 jobs, got %d", len(queue))
	}
}

func TestBuildQueue_CoreDocsComeFirstInOrder(t *testing.T) {
	queue := BuildQueue(scenarioPlaybook())

	wantCore := []docs.DocumentType{
		docs.DocZipGuide,
		docs.DocFull,
		docs.DocKpiDashboard,
		docs.DocCfaModel,
		docs.DocGuideMoneyModels,
		docs.DocOfferPresentation,
		docs.DocLandingPage,
		docs.DocDownsellPamphlet,
		docs.DocTripwireFollowup,
	}
	for i, want := range wantCore {
		if queue[i].Doc != want {
			t.Errorf("job %d: expected %s, got %s", i, want, queue[i].Doc)
		}
	}
}

func TestBuildQueue_Deterministic(t *testing.T) {
	pb := scenarioPlaybook()
	a := BuildQueue(pb)
	b := BuildQueue(pb)

	if len(a) != len(b) {
		t.Fatalf("queue lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Doc != b[i].Doc || a[i].OutputPath != b[i].OutputPath {
			t.Errorf("job %d differs between builds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestBuildQueue_PathsAreSanitizedAndUnique(t *testing.T) {
	pb := scenarioPlaybook()
	pb.Offer1.Name = `offer: "one" *special*`
	pb.Offer1.Stack[0].Asset.Name = "Asset? One"

	queue := BuildQueue(pb)
	seen := make(map[string]bool)
	for _, job := range queue {
		if seen[job.OutputPath] {
			t.Errorf("duplicate output path: %s", job.OutputPath)
		}
		seen[job.OutputPath] = true

		for _, c := range `\:*?"<>|` {
			if strings.ContainsRune(job.OutputPath, c) {
				t.Errorf("output path contains %q: %s", c, job.OutputPath)
			}
		}
		if strings.Contains(job.OutputPath, " ") {
			t.Errorf("output path contains a space: %s", job.OutputPath)
		}
	}
}

func TestBuildQueue_AssetJobsCarryTheirAsset(t *testing.T) {
	queue := BuildQueue(scenarioPlaybook())

	bundles, assets := 0, 0
	for _, job := range queue {
		switch job.Doc {
		case docs.DocAssetBundle:
			bundles++
			if job.Offer == nil {
				t.Error("bundle job missing its offer")
			}
			if !strings.HasPrefix(job.OutputPath, "04_Asset_Library/") {
				t.Errorf("bundle job outside asset library: %s", job.OutputPath)
			}
		case docs.DocSingleAsset:
			assets++
			if job.Asset == nil {
				t.Error("asset job missing its asset")
			}
		}
	}
	if bundles != 3 {
		t.Errorf("expected 3 bundle jobs, got %d", bundles)
	}
	if assets != 8 {
		t.Errorf("expected 8 asset jobs, got %d", assets)
	}
}

func TestBuildQueue_SkipsStackItemsWithoutAssets(t *testing.T) {
	pb := scenarioPlaybook()
	pb.Offer1.Stack[1].Asset = nil

	queue := BuildQueue(pb)
	if len(queue) != 19 {
		t.Errorf("expected 19 jobs when one asset is missing, got %d", len(queue))
	}
}
