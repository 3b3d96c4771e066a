package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"planbook/internal/genai"
)

var debriefCmd = &cobra.Command{
	Use:   "debrief",
	Short: "Get an AI debrief of your recent KPI history",
	Long: `Ask the AI to review the playbook and the recorded KPI history, then
save a dated debrief with a summary of the week and concrete advice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		st := app.store.Load()
		if st.Playbook == nil {
			return fmt.Errorf("no playbook found; run 'planctl generate' first")
		}
		if len(st.KpiHistory) == 0 {
			return fmt.Errorf("no KPI entries to debrief; record some with 'planctl kpi save'")
		}

		gen, err := app.newGenerator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.AITimeout)
		defer cancel()

		debrief, err := gen.GenerateWeeklyDebrief(ctx, *st.Playbook, st.KpiHistory)
		if err != nil {
			if errors.Is(err, genai.ErrRateLimited) {
				return err
			}
			return fmt.Errorf("debrief failed: %w", err)
		}

		if err := app.store.AddWeeklyDebrief(st, debrief); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		cmd.Printf("%sDebrief for %s%s\n", colorBold, debrief.Date, colorReset)
		cmd.Println("──────────────────────────────")
		cmd.Printf("%sSummary:%s %s\n", colorDim, colorReset, debrief.Summary)
		cmd.Printf("%sAdvice:%s  %s\n", colorDim, colorReset, debrief.Advice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debriefCmd)
}
