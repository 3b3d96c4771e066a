package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planbook/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what is saved and what to do next",
	Long:  `Summarize the saved state: business details, playbook, KPI history and debriefs, with a hint for the next step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		printStatus(cmd, app, app.store.Load())
		return nil
	},
}

func printStatus(cmd *cobra.Command, app *appEnv, st *model.AppState) {
	cmd.Printf("%sPlanbook Status%s\n", colorBold, colorReset)
	cmd.Println("──────────────────────────────")
	cmd.Printf("%sState file:%s  %s\n", colorDim, colorReset, app.store.Path())

	hasPlan := st.BusinessData.BusinessType != ""
	cmd.Printf("%sBusiness:%s    %s\n", colorDim, colorReset, checkmark(hasPlan, st.BusinessData.BusinessType, "not described yet"))

	if st.Playbook != nil {
		age := relativeTime(st.Playbook.GeneratedAt)
		cmd.Printf("%sPlaybook:%s    %s✓%s generated %s ago\n", colorDim, colorReset, colorGreen, colorReset, age)
		cmd.Printf("%sOffers:%s      %s / %s / %s\n", colorDim, colorReset,
			st.Playbook.Offer1.Name, st.Playbook.Offer2.Name, st.Playbook.Downsell.Offer.Name)
	} else {
		cmd.Printf("%sPlaybook:%s    %s✗%s none\n", colorDim, colorReset, colorRed, colorReset)
	}

	cmd.Printf("%sKPI entries:%s %d\n", colorDim, colorReset, len(st.KpiHistory))
	cmd.Printf("%sDebriefs:%s    %d\n", colorDim, colorReset, len(st.WeeklyDebriefs))

	cmd.Println()
	switch {
	case !hasPlan:
		cmd.Println("Next: describe your business with 'planctl plan set'")
	case st.Playbook == nil:
		cmd.Println("Next: generate your playbook with 'planctl generate'")
	case len(st.KpiHistory) == 0:
		cmd.Println("Next: export your kit with 'planctl export zip', then track numbers with 'planctl kpi save'")
	default:
		cmd.Println("Next: keep recording KPIs and run 'planctl debrief' weekly")
	}
}

func checkmark(ok bool, yes, no string) string {
	if ok {
		return fmt.Sprintf("%s✓%s %s", colorGreen, colorReset, yes)
	}
	return fmt.Sprintf("%s✗%s %s", colorRed, colorReset, no)
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func relativeTime(t time.Time) string {
	duration := time.Since(t)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	} else if duration < time.Hour {
		return fmt.Sprintf("%dm", int(duration.Minutes()))
	} else if duration < 24*time.Hour {
		return fmt.Sprintf("%dh", int(duration.Hours()))
	} else {
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
