package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"planbook/internal/model"
)

// Generator produces playbook content through a Provider. Sections are
// generated sequentially (later prompts reference earlier results); only the
// leaf asset-content calls run concurrently.
type Generator struct {
	provider         Provider
	logger           *slog.Logger
	assetConcurrency int
}

// NewGenerator creates a generator.
func NewGenerator(p Provider, logger *slog.Logger, assetConcurrency int) *Generator {
	if assetConcurrency <= 0 {
		assetConcurrency = 4
	}
	return &Generator{provider: p, logger: logger, assetConcurrency: assetConcurrency}
}

// GeneratePlaybook runs the full sequential generation pipeline. Any failure
// aborts the run entirely; no partial playbook is ever returned.
func (g *Generator) GeneratePlaybook(ctx context.Context, bd model.BusinessData) (*model.GeneratedPlaybook, error) {
	pb := &model.GeneratedPlaybook{}

	if err := g.section(ctx, "diagnosis", diagnosisPrompt(bd), &pb.Diagnosis); err != nil {
		return nil, err
	}
	if pb.Diagnosis.CurrentStage == "" {
		return nil, fmt.Errorf("diagnosis reply missing current_stage")
	}

	if err := g.section(ctx, "money model", moneyModelPrompt(bd), &pb.MoneyModel); err != nil {
		return nil, err
	}
	if len(pb.MoneyModel.Steps) == 0 {
		return nil, fmt.Errorf("money model reply has no steps")
	}

	if err := g.section(ctx, "offer 1", offerPrompt(bd, "flagship grand-slam offer"), &pb.Offer1); err != nil {
		return nil, err
	}
	if err := g.section(ctx, "offer 2", offerPrompt(bd, "second, differently-angled offer"), &pb.Offer2); err != nil {
		return nil, err
	}
	for _, offer := range []*model.Offer{&pb.Offer1, &pb.Offer2} {
		if offer.Name == "" || len(offer.Stack) == 0 {
			return nil, fmt.Errorf("offer reply missing name or stack")
		}
	}

	if err := g.section(ctx, "downsell", downsellPrompt(bd, pb.Offer1), &pb.Downsell); err != nil {
		return nil, err
	}
	if pb.Downsell.Offer.Name == "" {
		return nil, fmt.Errorf("downsell reply missing offer name")
	}

	if err := g.section(ctx, "marketing model", marketingModelPrompt(bd), &pb.MarketingModel); err != nil {
		return nil, err
	}
	if err := g.section(ctx, "sales funnel", salesFunnelPrompt(bd), &pb.SalesFunnel); err != nil {
		return nil, err
	}
	if err := g.section(ctx, "profit path", profitPathPrompt(bd), &pb.ProfitPath); err != nil {
		return nil, err
	}
	if err := g.section(ctx, "kpi dashboard", kpiDashboardPrompt(bd), &pb.KpiDashboard); err != nil {
		return nil, err
	}
	if len(pb.KpiDashboard.Kpis) == 0 {
		return nil, fmt.Errorf("kpi dashboard reply has no kpis")
	}

	if err := g.fillAssets(ctx, bd, pb); err != nil {
		return nil, err
	}

	pb.GeneratedAt = time.Now().UTC()
	return pb, nil
}

// section runs one generation call and decodes its JSON reply into out.
func (g *Generator) section(ctx context.Context, name, prompt string, out any) error {
	g.logger.Info("generating section", "section", name)

	reply, err := g.provider.Complete(ctx, CompletionRequest{
		System: systemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", name, err)
	}

	raw, err := extractJSON(reply)
	if err != nil {
		return fmt.Errorf("%s reply is not parsable: %w", name, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%s reply does not match the expected shape: %w", name, err)
	}
	return nil
}

// fillAssets generates markdown content for every declared asset. Assets are
// independent leaves, so they run with bounded concurrency.
func (g *Generator) fillAssets(ctx context.Context, bd model.BusinessData, pb *model.GeneratedPlaybook) error {
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.assetConcurrency)

	for _, offer := range []*model.Offer{&pb.Offer1, &pb.Offer2, &pb.Downsell.Offer} {
		for i := range offer.Stack {
			asset := offer.Stack[i].Asset
			if asset == nil || asset.Name == "" {
				offer.Stack[i].Asset = nil
				continue
			}
			offerName := offer.Name
			grp.Go(func() error {
				content, err := g.provider.Complete(gctx, CompletionRequest{
					Prompt: assetContentPrompt(bd, offerName, *asset),
				})
				if err != nil {
					return fmt.Errorf("failed to generate asset %q: %w", asset.Name, err)
				}
				asset.Content = strings.TrimSpace(content)
				return nil
			})
		}
	}
	return grp.Wait()
}

// SuggestField proposes a value for one business-data field.
func (g *Generator) SuggestField(ctx context.Context, bd model.BusinessData, field string) (string, error) {
	reply, err := g.provider.Complete(ctx, CompletionRequest{
		Prompt:    suggestFieldPrompt(bd, field),
		MaxTokens: 256,
	})
	if err != nil {
		return "", fmt.Errorf("failed to suggest %s: %w", field, err)
	}
	return strings.TrimSpace(reply), nil
}

// GenerateWeeklyDebrief writes AI commentary over the KPI history.
func (g *Generator) GenerateWeeklyDebrief(ctx context.Context, pb model.GeneratedPlaybook, history []model.KpiEntry) (model.WeeklyDebrief, error) {
	var d model.WeeklyDebrief
	if err := g.section(ctx, "weekly debrief", weeklyDebriefPrompt(pb, history), &d); err != nil {
		return model.WeeklyDebrief{}, err
	}
	if d.Summary == "" {
		return model.WeeklyDebrief{}, fmt.Errorf("weekly debrief reply missing summary")
	}
	d.Date = time.Now().UTC().Format("2006-01-02")
	return d, nil
}

// GenerateVideoScript writes the promotional video script.
func (g *Generator) GenerateVideoScript(ctx context.Context, pb model.GeneratedPlaybook, bd model.BusinessData) (string, error) {
	reply, err := g.provider.Complete(ctx, CompletionRequest{
		Prompt: videoScriptPrompt(pb, bd),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate video script: %w", err)
	}
	script := strings.TrimSpace(reply)
	if script == "" {
		return "", fmt.Errorf("video script reply was empty")
	}
	return script, nil
}

// extractJSON pulls the JSON object out of a reply that may be wrapped in
// markdown fences or prose.
func extractJSON(reply string) (string, error) {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object found in reply")
	}
	return s[start : end+1], nil
}
