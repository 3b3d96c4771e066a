package docs

import (
	"fmt"

	"planbook/internal/model"
)

// GuideData is the render payload for the business-university guide family.
type GuideData struct {
	Title    string
	Intro    string
	Sections []GuideSection
}

// GuideSection is one heading of a guide.
type GuideSection struct {
	Heading string
	Body    string
	Points  []string
}

func pricingOfferGuide(c Context) GuideData {
	return GuideData{
		Title: "Pricing & Offer Construction",
		Intro: fmt.Sprintf("How the offers for your %s were built, and how to evolve them.", c.BusinessData.BusinessType),
		Sections: []GuideSection{
			{
				Heading: "Charge for the outcome, not the activity",
				Body: fmt.Sprintf("%s is priced at %s because it is anchored to the result it produces, not the hours it takes. Raise price whenever the promised outcome grows.",
					c.Playbook.Offer1.Name, c.Playbook.Offer1.Price),
			},
			{
				Heading: "The value stack",
				Body:    "Every line of the stack answers one specific objection. Remove a line only when the objection it answers has disappeared from sales calls.",
				Points:  stackSolutions(c.Playbook.Offer1.Stack),
			},
			{
				Heading: "Guarantees reverse risk",
				Body:    "A strong guarantee moves the risk of failure from the buyer to you. It only works when delivery is systemized; fix delivery before strengthening the guarantee.",
			},
		},
	}
}

func executionGuide(c Context) GuideData {
	return GuideData{
		Title: "Execution: Your First 30 Days",
		Intro: "A plan only counts when it ships. This is the order of operations.",
		Sections: []GuideSection{
			{
				Heading: "Week 1: one offer, ten conversations",
				Body: fmt.Sprintf("Put %s in front of ten people matching: %s. Handwritten outreach beats polished funnels at this stage.",
					c.Playbook.Offer1.Name, c.BusinessData.TargetClient),
			},
			{
				Heading: "Week 2-3: close and deliver",
				Body:    "Deliver the first sales personally. Note every question buyers ask; those questions become your marketing material.",
			},
			{
				Heading: "Week 4: measure",
				Body:    "Fill in the KPI dashboard daily. The constraint named in your diagnosis is the only number that matters this month.",
				Points:  c.Playbook.Diagnosis.Constraints,
			},
		},
	}
}

func leadGenerationGuide(c Context) GuideData {
	methods := make([]string, 0, len(c.Playbook.MarketingModel.Steps))
	for _, s := range c.Playbook.MarketingModel.Steps {
		methods = append(methods, s.Method)
	}
	return GuideData{
		Title: "Lead Generation Playbook",
		Intro: fmt.Sprintf("Where the next hundred conversations with %s come from.", c.BusinessData.TargetClient),
		Sections: []GuideSection{
			{
				Heading: "Your channels, in order",
				Body:    "Work one channel until it produces predictable weekly leads before adding the next.",
				Points:  methods,
			},
			{
				Heading: "The lead magnet is the downsell",
				Body: fmt.Sprintf("%s doubles as your entry point: a buyer, however small, is worth more than a hundred subscribers.",
					c.Playbook.Downsell.Offer.Name),
			},
			{
				Heading: "Cost per lead discipline",
				Body:    "Track cost per lead weekly. Cut any channel whose cost doubles without volume doubling.",
			},
		},
	}
}

func leverageGuide(c Context) GuideData {
	return GuideData{
		Title: "Leverage: Doing More With the Same Hours",
		Intro: fmt.Sprintf("You currently run on %s hours. Leverage is how output grows while hours do not.", c.BusinessData.WorkingHours),
		Sections: []GuideSection{
			{
				Heading: "Sell one-to-many",
				Body:    "Anything explained twice becomes a document; anything delivered twice becomes a template. The asset library in this archive is that principle applied to your offers.",
			},
			{
				Heading: "Price is leverage",
				Body:    "Doubling price with a stronger promise is the only growth move that needs no new capacity.",
			},
			{
				Heading: "Your role",
				Body:    c.Playbook.Diagnosis.YourRole,
			},
		},
	}
}

func advancedStrategyGuide(c Context) GuideData {
	return GuideData{
		Title: "Advanced Strategy & Roadmap",
		Intro: "What to do after the first model works.",
		Sections: []GuideSection{
			{
				Heading: "From stage to stage",
				Body: fmt.Sprintf("You are at: %s. Each milestone below unlocks the next constraint.",
					c.Playbook.Diagnosis.CurrentStage),
				Points: milestoneNames(c),
			},
			{
				Heading: "Compound the winners",
				Body:    "Ruthlessly reinvest in the single offer and single channel with the best unit economics. Diversification is for after the machine works.",
			},
		},
	}
}

func moneyModelsGuide(c Context) GuideData {
	return GuideData{
		Title: "Money Models Deep Dive",
		Intro: c.Playbook.MoneyModel.Description,
		Sections: []GuideSection{
			{
				Heading: "Client-financed acquisition",
				Body:    "The goal: gross profit from a new customer's first 30 days exceeds the cost of acquiring the next one. Hit that and growth stops needing outside cash.",
			},
			{
				Heading: "Your sequence",
				Body:    "Each step exists to fund the one after it.",
				Points:  moneyStepTitles(c),
			},
			{
				Heading: "Upsell timing",
				Body:    "The best moment to offer the next step is at the point of highest delivered value, not at the point of purchase.",
			},
		},
	}
}

func scalingRoadmapGuide(c Context) GuideData {
	return GuideData{
		Title: "Scaling Roadmap",
		Intro: fmt.Sprintf("The path from %s per month to the next milestone.", c.BusinessData.MonthlyRevenue),
		Sections: []GuideSection{
			{
				Heading: "Milestones",
				Body:    "Scale in this order; skipping a milestone moves the bottleneck downstream where it is more expensive to fix.",
				Points:  milestoneNames(c),
			},
			{
				Heading: "Hire for the constraint",
				Body:    "Every hire should remove the named constraint of the current stage, nothing else.",
			},
		},
	}
}

func stackSolutions(stack []model.OfferStackItem) []string {
	out := make([]string, 0, len(stack))
	for _, item := range stack {
		out = append(out, item.Solution)
	}
	return out
}

func milestoneNames(c Context) []string {
	out := make([]string, 0, len(c.Playbook.ProfitPath.Milestones))
	for _, m := range c.Playbook.ProfitPath.Milestones {
		out = append(out, fmt.Sprintf("%s (target: %s)", m.Milestone, m.Target))
	}
	return out
}

func moneyStepTitles(c Context) []string {
	out := make([]string, 0, len(c.Playbook.MoneyModel.Steps))
	for _, s := range c.Playbook.MoneyModel.Steps {
		out = append(out, fmt.Sprintf("Step %d: %s (%s at %s)", s.StepNumber, s.Title, s.OfferName, s.Price))
	}
	return out
}
