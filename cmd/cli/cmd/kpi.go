package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planbook/internal/model"
)

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Record and review your tracked numbers",
}

var kpiSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save KPI values for a day",
	Long: `Save KPI values for one day. Saving the same date again replaces that
day's entry.

Example:
  planctl kpi save --set leads=24 --set sales=3 --notes "slow week"
  planctl kpi save --date 2026-08-28 --set leads=31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		date, _ := flags.GetString("date")
		sets, _ := flags.GetStringSlice("set")
		notes, _ := flags.GetString("notes")

		if len(sets) == 0 {
			return fmt.Errorf("at least one --set key=value is required")
		}
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("--date must be YYYY-MM-DD, got %q", date)
		}

		values := make(map[string]float64, len(sets))
		for _, pair := range sets {
			key, raw, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("--set needs key=value, got %q", pair)
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("value for %q is not a number: %q", key, raw)
			}
			values[key] = v
		}

		app, err := loadApp()
		if err != nil {
			return err
		}

		st := app.store.Load()
		entry := model.KpiEntry{Date: date, Values: values, Notes: notes}
		if err := app.store.SaveKpiEntry(st, entry); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		cmd.Printf("✓ Saved %d value(s) for %s\n", len(values), date)
		return nil
	},
}

var kpiListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded KPI entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		app, err := loadApp()
		if err != nil {
			return err
		}

		st := app.store.Load()
		if len(st.KpiHistory) == 0 {
			cmd.Println("No KPI entries yet. Record one with 'planctl kpi save'.")
			return nil
		}

		names := kpiNames(st)
		for i, entry := range st.KpiHistory {
			if limit > 0 && i >= limit {
				break
			}
			cmd.Printf("%s%s%s\n", colorBold, entry.Date, colorReset)
			for key, value := range entry.Values {
				label := key
				if name, ok := names[key]; ok {
					label = name
				}
				cmd.Printf("  %s%-24s%s %s\n", colorDim, label+":", colorReset, strconv.FormatFloat(value, 'f', -1, 64))
			}
			if entry.Notes != "" {
				cmd.Printf("  %snotes:%s %s\n", colorDim, colorReset, entry.Notes)
			}
		}
		return nil
	},
}

// kpiNames maps KPI keys to their display names from the generated dashboard.
func kpiNames(st *model.AppState) map[string]string {
	names := map[string]string{}
	if st.Playbook == nil {
		return names
	}
	for _, kpi := range st.Playbook.KpiDashboard.Kpis {
		names[kpi.Key] = kpi.Name
	}
	return names
}

func init() {
	flags := kpiSaveCmd.Flags()
	flags.String("date", "", "entry date as YYYY-MM-DD (default: today)")
	flags.StringSlice("set", []string{}, "KPI value as key=number, repeatable")
	flags.String("notes", "", "free-form notes for the day")

	kpiListCmd.Flags().Int("limit", 0, "show at most this many entries")

	kpiCmd.AddCommand(kpiSaveCmd)
	kpiCmd.AddCommand(kpiListCmd)
	rootCmd.AddCommand(kpiCmd)
}
