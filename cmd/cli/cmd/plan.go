package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planbook/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the description of your business",
}

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set or update business details",
	Long: `Set one or more fields of the business description. Fields not passed
keep their current value.

Example:
  planctl plan set --business-type "boxing gym" --location "Denver, CO" --monthly-revenue "$18k"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		st := app.store.Load()
		applyPlanFlags(cmd, &st.BusinessData)

		if err := app.store.Save(st); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		cmd.Println("✓ Business details saved")
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current business details",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		bd := app.store.Load().BusinessData
		rows := []struct{ label, value string }{
			{"Business type", bd.BusinessType},
			{"Location", bd.Location},
			{"Monthly revenue", bd.MonthlyRevenue},
			{"Employees", bd.Employees},
			{"Marketing methods", bd.MarketingMethods},
			{"Target client", bd.TargetClient},
			{"Biggest challenge", bd.BiggestChallenge},
			{"Core offer", bd.CoreOffer},
			{"Working hours", bd.WorkingHours},
			{"Cost per lead", bd.CostPerLead},
			{"Funnel stages", bd.FunnelStages},
		}
		for _, row := range rows {
			value := row.value
			if value == "" {
				value = "-"
			}
			cmd.Printf("%s%-18s%s %s\n", colorDim, row.label+":", colorReset, value)
		}
		return nil
	},
}

// applyPlanFlags copies every flag the user passed onto the business data,
// leaving untouched fields as they were.
func applyPlanFlags(cmd *cobra.Command, bd *model.BusinessData) {
	fields := map[string]*string{
		"business-type":     &bd.BusinessType,
		"location":          &bd.Location,
		"monthly-revenue":   &bd.MonthlyRevenue,
		"employees":         &bd.Employees,
		"marketing-methods": &bd.MarketingMethods,
		"target-client":     &bd.TargetClient,
		"biggest-challenge": &bd.BiggestChallenge,
		"core-offer":        &bd.CoreOffer,
		"working-hours":     &bd.WorkingHours,
		"cost-per-lead":     &bd.CostPerLead,
		"funnel-stages":     &bd.FunnelStages,
	}
	for name, target := range fields {
		if cmd.Flags().Changed(name) {
			*target, _ = cmd.Flags().GetString(name)
		}
	}
}

func init() {
	flags := planSetCmd.Flags()
	flags.String("business-type", "", "what kind of business this is")
	flags.String("location", "", "where the business operates")
	flags.String("monthly-revenue", "", "current monthly revenue")
	flags.String("employees", "", "how many people work in the business")
	flags.String("marketing-methods", "", "how you currently get customers")
	flags.String("target-client", "", "who your ideal customer is")
	flags.String("biggest-challenge", "", "the biggest problem holding you back")
	flags.String("core-offer", "", "your main product or service and its price")
	flags.String("working-hours", "", "hours the owner works per week")
	flags.String("cost-per-lead", "", "what a lead costs you today")
	flags.String("funnel-stages", "", "the steps a stranger passes before buying")

	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planShowCmd)
	rootCmd.AddCommand(planCmd)
}
