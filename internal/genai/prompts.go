package genai

import (
	"encoding/json"
	"fmt"

	"planbook/internal/model"
)

const systemPrompt = `You are a business strategist producing one section of a
business playbook. Reply with a single JSON object matching the requested
shape exactly. No commentary, no markdown fences, JSON only.`

func businessJSON(bd model.BusinessData) string {
	data, err := json.Marshal(bd)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func diagnosisPrompt(bd model.BusinessData) string {
	return fmt.Sprintf(`Business: %s
Diagnose this business. Reply with JSON:
{"current_stage": "...", "your_role": "...", "constraints": ["..."], "actions_to_win": ["..."]}`,
		businessJSON(bd))
}

func moneyModelPrompt(bd model.BusinessData) string {
	return fmt.Sprintf(`Business: %s
Design a client-financed acquisition money model: a short sequence of offers
where early cash funds customer acquisition. Reply with JSON:
{"title": "...", "description": "...", "steps": [{"step_number": 1, "title": "...", "offer_name": "...", "price": "...", "rationale": "..."}]}`,
		businessJSON(bd))
}

func offerPrompt(bd model.BusinessData, which string) string {
	return fmt.Sprintf(`Business: %s
Create the %s. Each stack item may include a downloadable asset
(name, type tag, leave "content" empty). Reply with JSON:
{"name": "...", "price": "...", "guarantee": "...", "stack": [{"problem": "...", "solution": "...", "value": "...", "asset": {"name": "...", "type": "...", "content": ""}}]}`,
		businessJSON(bd), which)
}

func downsellPrompt(bd model.BusinessData, offer1 model.Offer) string {
	return fmt.Sprintf(`Business: %s
The core offer is %q at %s. Create a low-priced downsell that earns a first
yes from buyers not ready for the core offer. Reply with JSON:
{"rationale": "...", "offer": {"name": "...", "price": "...", "guarantee": "...", "stack": [{"problem": "...", "solution": "...", "value": "...", "asset": {"name": "...", "type": "...", "content": ""}}]}}`,
		businessJSON(bd), offer1.Name, offer1.Price)
}

func marketingModelPrompt(bd model.BusinessData) string {
	return fmt.Sprintf(`Business: %s
Lay out the lead-getting methods for this business, in working order. Reply with JSON:
{"steps": [{"method": "...", "details": "...", "example": "..."}]}`,
		businessJSON(bd))
}

func salesFunnelPrompt(bd model.BusinessData) string {
	return fmt.Sprintf(`Business: %s
Design the sales funnel from stranger to customer. Reply with JSON:
{"title": "...", "stages": [{"name": "...", "goal": "...", "actions": "..."}]}`,
		businessJSON(bd))
}

func profitPathPrompt(bd model.BusinessData) string {
	return fmt.Sprintf(`Business: %s
Define the profit milestones from today's revenue to the next level. Reply with JSON:
{"milestones": [{"milestone": "...", "target": "...", "actions": "..."}]}`,
		businessJSON(bd))
}

func kpiDashboardPrompt(bd model.BusinessData) string {
	return fmt.Sprintf(`Business: %s
Pick the handful of KPIs this business should track daily. Reply with JSON:
{"kpis": [{"key": "snake_case_key", "name": "...", "description": "...", "target": "..."}]}`,
		businessJSON(bd))
}

func assetContentPrompt(bd model.BusinessData, offerName string, asset model.Asset) string {
	return fmt.Sprintf(`Business: %s
Write the full content of the asset %q (type: %s) included in the offer %q.
Markdown, ready to hand to a customer. Reply with the markdown only.`,
		businessJSON(bd), asset.Name, asset.Type, offerName)
}

func suggestFieldPrompt(bd model.BusinessData, field string) string {
	return fmt.Sprintf(`Business so far: %s
Suggest a realistic value for the field %q. Reply with the value only, one line.`,
		businessJSON(bd), field)
}

func weeklyDebriefPrompt(pb model.GeneratedPlaybook, history []model.KpiEntry) string {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		historyJSON = []byte("[]")
	}
	return fmt.Sprintf(`The business runs this money model: %q.
KPI history (most recent first): %s
Write a weekly debrief. Reply with JSON:
{"summary": "...", "advice": "..."}`,
		pb.MoneyModel.Title, historyJSON)
}

func videoScriptPrompt(pb model.GeneratedPlaybook, bd model.BusinessData) string {
	return fmt.Sprintf(`Business: %s
Core offer: %q at %s.
Write a 45-second promotional video script, spoken word only. Reply with the
script text only.`,
		businessJSON(bd), pb.Offer1.Name, pb.Offer1.Price)
}
