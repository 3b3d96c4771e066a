package export

import (
	"fmt"

	"planbook/internal/docs"
	"planbook/internal/model"
)

// Job is one entry of a bulk-export queue: which document to produce and
// where it lands inside the archive. Jobs are never mutated, only advanced
// past.
type Job struct {
	Doc        docs.DocumentType
	OutputPath string

	// Asset is set for single-asset jobs, Offer for asset-bundle jobs.
	Asset *model.Asset
	Offer *model.Offer
}

// BuildQueue produces the fixed, deterministic job list for a bulk export of
// the given playbook: nine core documents, then one bundle document plus one
// document per attached asset for each of the three offers. The queue is
// rebuilt from scratch for every run; nothing survives from prior runs.
func BuildQueue(pb *model.GeneratedPlaybook) []Job {
	jobs := []Job{
		{Doc: docs.DocZipGuide, OutputPath: "00_START_HERE/Read_Me_First.pdf"},
		{Doc: docs.DocFull, OutputPath: "01_Core_Plan/Full_Playbook.pdf"},
		{Doc: docs.DocKpiDashboard, OutputPath: "01_Core_Plan/KPI_Dashboard.pdf"},
		{Doc: docs.DocCfaModel, OutputPath: "02_Money_Models/CFA_Money_Model.pdf"},
		{Doc: docs.DocGuideMoneyModels, OutputPath: "02_Money_Models/Money_Models_Deep_Dive.pdf"},
		{Doc: docs.DocOfferPresentation, OutputPath: "03_Marketing_Materials/Offer_Presentation.pdf"},
		{Doc: docs.DocLandingPage, OutputPath: "03_Marketing_Materials/Landing_Page.pdf"},
		{Doc: docs.DocDownsellPamphlet, OutputPath: "03_Marketing_Materials/Downsell_Pamphlet.pdf"},
		{Doc: docs.DocTripwireFollowup, OutputPath: "03_Marketing_Materials/Followup_Playbook.pdf"},
	}

	offers := pb.Offers()
	for i := range offers {
		offer := &offers[i]
		folder := fmt.Sprintf("04_Asset_Library/%s", SanitizeName(offer.Name))

		jobs = append(jobs, Job{
			Doc:        docs.DocAssetBundle,
			OutputPath: folder + "/_Complete_Bundle.pdf",
			Offer:      offer,
		})
		for j := range offer.Stack {
			asset := offer.Stack[j].Asset
			if asset == nil {
				continue
			}
			jobs = append(jobs, Job{
				Doc:        docs.DocSingleAsset,
				OutputPath: fmt.Sprintf("%s/%s.pdf", folder, SanitizeName(asset.Name)),
				Asset:      asset,
			})
		}
	}
	return jobs
}
