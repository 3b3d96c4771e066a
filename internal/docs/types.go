// Package docs renders playbook documents to self-contained HTML.
// Every exportable artifact starts here: a document type plus render context
// in, one printable HTML page out.
package docs

import (
	"fmt"

	"planbook/internal/model"
)

// DocumentType identifies one printable document.
type DocumentType string

const (
	DocFull              DocumentType = "full"
	DocKpiDashboard      DocumentType = "kpi-dashboard"
	DocOfferPresentation DocumentType = "offer-presentation"
	DocCfaModel          DocumentType = "cfa-model"
	DocLandingPage       DocumentType = "landing-page"
	DocDownsellPamphlet  DocumentType = "downsell-pamphlet"
	DocTripwireFollowup  DocumentType = "tripwire-followup"
	DocZipGuide          DocumentType = "zip-guide"
	DocSingleAsset       DocumentType = "single-asset"
	DocAssetBundle       DocumentType = "asset-bundle"

	// Business-university guide family.
	DocGuidePricingOffer     DocumentType = "guide-pricing-offer"
	DocGuideExecution        DocumentType = "guide-execution"
	DocGuideLeadGeneration   DocumentType = "guide-lead-generation"
	DocGuideLeverage         DocumentType = "guide-leverage"
	DocGuideAdvancedStrategy DocumentType = "guide-advanced-strategy"
	DocGuideMoneyModels      DocumentType = "guide-money-models"
	DocGuideScalingRoadmap   DocumentType = "guide-scaling-roadmap"
)

// AllTypes lists every renderable document type.
func AllTypes() []DocumentType {
	return []DocumentType{
		DocFull,
		DocKpiDashboard,
		DocOfferPresentation,
		DocCfaModel,
		DocLandingPage,
		DocDownsellPamphlet,
		DocTripwireFollowup,
		DocZipGuide,
		DocSingleAsset,
		DocAssetBundle,
		DocGuidePricingOffer,
		DocGuideExecution,
		DocGuideLeadGeneration,
		DocGuideLeverage,
		DocGuideAdvancedStrategy,
		DocGuideMoneyModels,
		DocGuideScalingRoadmap,
	}
}

// Valid reports whether t names a known document type.
func (t DocumentType) Valid() bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Context carries everything a document builder may need. SingleAsset is set
// only for single-asset documents, AssetBundle only for asset-bundle
// documents.
type Context struct {
	Playbook     *model.GeneratedPlaybook
	BusinessData *model.BusinessData
	SingleAsset  *model.Asset
	AssetBundle  *model.Offer
	KpiHistory   []model.KpiEntry
}

func (c Context) validate(t DocumentType) error {
	if c.Playbook == nil {
		return fmt.Errorf("document %s requires a playbook", t)
	}
	if c.BusinessData == nil {
		return fmt.Errorf("document %s requires business data", t)
	}
	switch t {
	case DocSingleAsset:
		if c.SingleAsset == nil {
			return fmt.Errorf("document %s requires a single asset", t)
		}
	case DocAssetBundle:
		if c.AssetBundle == nil {
			return fmt.Errorf("document %s requires an offer bundle", t)
		}
	}
	return nil
}
