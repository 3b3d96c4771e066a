package docs

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// builder turns render context into the data and title one content template
// needs. One builder per document type keeps the dispatch exhaustive: an
// unregistered type is a hard error, not a silent blank page.
type builder struct {
	template string
	title    func(Context) string
	data     func(Context) any
}

var registry = map[DocumentType]builder{
	DocFull: {
		template: "full",
		title:    func(c Context) string { return "Your Business Playbook" },
		data:     func(c Context) any { return c },
	},
	DocKpiDashboard: {
		template: "kpi-dashboard",
		title:    func(c Context) string { return "KPI Dashboard" },
		data:     func(c Context) any { return c },
	},
	DocOfferPresentation: {
		template: "offer-presentation",
		title:    func(c Context) string { return "Offer Presentation" },
		data:     func(c Context) any { return c },
	},
	DocCfaModel: {
		template: "cfa-model",
		title:    func(c Context) string { return c.Playbook.MoneyModel.Title },
		data:     func(c Context) any { return c },
	},
	DocLandingPage: {
		template: "landing-page",
		title:    func(c Context) string { return c.Playbook.Offer1.Name },
		data:     func(c Context) any { return c },
	},
	DocDownsellPamphlet: {
		template: "downsell-pamphlet",
		title:    func(c Context) string { return c.Playbook.Downsell.Offer.Name },
		data:     func(c Context) any { return c },
	},
	DocTripwireFollowup: {
		template: "tripwire-followup",
		title:    func(c Context) string { return "Follow-Up Playbook" },
		data:     func(c Context) any { return c },
	},
	DocZipGuide: {
		template: "zip-guide",
		title:    func(c Context) string { return "Read Me First" },
		data:     func(c Context) any { return c },
	},
	DocSingleAsset: {
		template: "single-asset",
		title:    func(c Context) string { return c.SingleAsset.Name },
		data:     func(c Context) any { return c },
	},
	DocAssetBundle: {
		template: "asset-bundle",
		title:    func(c Context) string { return c.AssetBundle.Name + " - Complete Bundle" },
		data:     func(c Context) any { return c },
	},
	DocGuidePricingOffer:     guideBuilder(pricingOfferGuide),
	DocGuideExecution:        guideBuilder(executionGuide),
	DocGuideLeadGeneration:   guideBuilder(leadGenerationGuide),
	DocGuideLeverage:         guideBuilder(leverageGuide),
	DocGuideAdvancedStrategy: guideBuilder(advancedStrategyGuide),
	DocGuideMoneyModels:      guideBuilder(moneyModelsGuide),
	DocGuideScalingRoadmap:   guideBuilder(scalingRoadmapGuide),
}

func guideBuilder(gen func(Context) GuideData) builder {
	return builder{
		template: "guide",
		title:    func(c Context) string { return gen(c).Title },
		data:     func(c Context) any { return gen(c) },
	}
}

// Render produces the self-contained HTML for one document.
func Render(t DocumentType, ctx Context) (string, error) {
	b, ok := registry[t]
	if !ok {
		return "", fmt.Errorf("unknown document type %q", t)
	}
	if err := ctx.validate(t); err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&body, b.template, b.data(ctx)); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", t, err)
	}

	var page bytes.Buffer
	err := pageTemplates.ExecuteTemplate(&page, "base", map[string]any{
		"Title": b.title(ctx),
		"Body":  template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to wrap %s: %w", t, err)
	}
	return page.String(), nil
}

// IsEmpty reports whether a rendered page carries no visible content.
// An empty render is counted as a per-job failure by the exporter.
func IsEmpty(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return true
	}
	return strings.TrimSpace(doc.Find("body").Text()) == ""
}
