// Package model contains the domain types shared across planbook.
package model

import "time"

// BusinessData is the free-form description of the business a planning run
// starts from. It is immutable once a run has been submitted.
type BusinessData struct {
	BusinessType     string `json:"business_type"`
	Location         string `json:"location"`
	MonthlyRevenue   string `json:"monthly_revenue"`
	Employees        string `json:"employees"`
	MarketingMethods string `json:"marketing_methods"`
	TargetClient     string `json:"target_client"`
	BiggestChallenge string `json:"biggest_challenge"`
	CoreOffer        string `json:"core_offer"`
	WorkingHours     string `json:"working_hours"`
	CostPerLead      string `json:"cost_per_lead"`
	FunnelStages     string `json:"funnel_stages"`
}

// Asset is a downloadable artifact attached to an offer stack item.
// Content is markdown; assets are generated once and never mutated.
type Asset struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// OfferStackItem is one value-adding line of an offer's value stack.
type OfferStackItem struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Value    string `json:"value"`
	Asset    *Asset `json:"asset,omitempty"`
}

// Offer is a named value stack with pricing.
type Offer struct {
	Name      string           `json:"name"`
	Price     string           `json:"price"`
	Stack     []OfferStackItem `json:"stack"`
	Guarantee string           `json:"guarantee"`
}

// Diagnosis is the generated assessment of where the business stands.
type Diagnosis struct {
	CurrentStage string   `json:"current_stage"`
	YourRole     string   `json:"your_role"`
	Constraints  []string `json:"constraints"`
	ActionsToWin []string `json:"actions_to_win"`
}

// MoneyModelStep is one step of the client-financed-acquisition sequence.
type MoneyModelStep struct {
	StepNumber int    `json:"step_number"`
	Title      string `json:"title"`
	OfferName  string `json:"offer_name"`
	Price      string `json:"price"`
	Rationale  string `json:"rationale"`
}

// MoneyModel describes how the business gets paid to acquire customers.
type MoneyModel struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Steps       []MoneyModelStep `json:"steps"`
}

// Downsell is the lower-priced fallback offer.
type Downsell struct {
	Rationale string `json:"rationale"`
	Offer     Offer  `json:"offer"`
}

// MarketingStep is one item of the marketing model.
type MarketingStep struct {
	Method  string `json:"method"`
	Details string `json:"details"`
	Example string `json:"example"`
}

// MarketingModel is the ordered list of lead-getting moves.
type MarketingModel struct {
	Steps []MarketingStep `json:"steps"`
}

// FunnelStage is one stage of the generated sales funnel.
type FunnelStage struct {
	Name    string `json:"name"`
	Goal    string `json:"goal"`
	Actions string `json:"actions"`
}

// SalesFunnel is the staged path from stranger to customer.
type SalesFunnel struct {
	Title  string        `json:"title"`
	Stages []FunnelStage `json:"stages"`
}

// ProfitMilestone is a checkpoint on the profit path.
type ProfitMilestone struct {
	Milestone string `json:"milestone"`
	Target    string `json:"target"`
	Actions   string `json:"actions"`
}

// ProfitPath is the sequence of profit milestones.
type ProfitPath struct {
	Milestones []ProfitMilestone `json:"milestones"`
}

// KpiDefinition describes one metric the dashboard tracks.
type KpiDefinition struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Target      string `json:"target"`
}

// KpiDashboard is the generated set of metrics worth tracking.
type KpiDashboard struct {
	Kpis []KpiDefinition `json:"kpis"`
}

// GeneratedPlaybook aggregates every AI-generated section of a planning run.
// It is created once per run and treated as immutable afterwards.
type GeneratedPlaybook struct {
	Diagnosis      Diagnosis      `json:"diagnosis"`
	MoneyModel     MoneyModel     `json:"money_model"`
	Offer1         Offer          `json:"offer1"`
	Offer2         Offer          `json:"offer2"`
	Downsell       Downsell       `json:"downsell"`
	MarketingModel MarketingModel `json:"marketing_model"`
	SalesFunnel    SalesFunnel    `json:"sales_funnel"`
	ProfitPath     ProfitPath     `json:"profit_path"`
	KpiDashboard   KpiDashboard   `json:"kpi_dashboard"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// Offers returns the three generated offers in their export order.
func (p *GeneratedPlaybook) Offers() []Offer {
	return []Offer{p.Offer1, p.Offer2, p.Downsell.Offer}
}

// KpiEntry is a user-entered metric record for one calendar day.
// Date is formatted as 2006-01-02; one entry per date.
type KpiEntry struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
	Notes  string             `json:"notes,omitempty"`
}

// WeeklyDebrief is an AI-generated commentary over recent KPI history,
// keyed by the date it was generated. Never mutated after creation.
type WeeklyDebrief struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
	Advice  string `json:"advice"`
}

// AppState is the entire persisted application state: one JSON blob.
// BusinessData is a value, not a pointer: a fresh state carries an empty,
// safely readable description that the intake fills field by field.
type AppState struct {
	BusinessData   BusinessData       `json:"businessData"`
	Playbook       *GeneratedPlaybook `json:"playbook,omitempty"`
	KpiHistory     []KpiEntry         `json:"kpiHistory,omitempty"`
	WeeklyDebriefs []WeeklyDebrief    `json:"weeklyDebriefs,omitempty"`
}
