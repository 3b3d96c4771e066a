package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"planbook/internal/genai"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full business playbook",
	Long: `Run the AI generation pipeline over the saved business details.

Sections are generated in order (diagnosis, money model, offers, downsell,
marketing, funnel, profit path, KPI dashboard), then every offer asset is
written out. Generation is all-or-nothing: if any section fails, nothing is
saved and the previous playbook (if any) is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		st := app.store.Load()
		if st.BusinessData.BusinessType == "" {
			return fmt.Errorf("no business details found; run 'planctl plan set' first")
		}

		gen, err := app.newGenerator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.AITimeout)
		defer cancel()

		cmd.Println("Generating your playbook, this takes a minute...")
		pb, err := gen.GeneratePlaybook(ctx, st.BusinessData)
		if err != nil {
			if errors.Is(err, genai.ErrRateLimited) {
				return err
			}
			return fmt.Errorf("generation failed: %w", err)
		}

		st.Playbook = pb
		if err := app.store.Save(st); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		cmd.Println("✓ Playbook generated!")
		cmd.Printf("Diagnosis:   %s\n", pb.Diagnosis.CurrentStage)
		cmd.Printf("Money model: %s\n", pb.MoneyModel.Title)
		cmd.Printf("Offer 1:     %s (%s)\n", pb.Offer1.Name, pb.Offer1.Price)
		cmd.Printf("Offer 2:     %s (%s)\n", pb.Offer2.Name, pb.Offer2.Price)
		cmd.Printf("Downsell:    %s (%s)\n", pb.Downsell.Offer.Name, pb.Downsell.Offer.Price)
		cmd.Printf("KPIs:        %d tracked\n", len(pb.KpiDashboard.Kpis))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
