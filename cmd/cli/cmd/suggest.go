package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [field]",
	Short: "Ask the AI to suggest a value for one business field",
	Long: `Suggest a realistic value for one field of the business description,
based on everything entered so far.

Field names match the 'plan set' flags, for example:
  planctl suggest target-client
  planctl suggest funnel-stages`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := args[0]

		app, err := loadApp()
		if err != nil {
			return err
		}

		gen, err := app.newGenerator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.AITimeout)
		defer cancel()

		suggestion, err := gen.SuggestField(ctx, app.store.Load().BusinessData, field)
		if err != nil {
			return fmt.Errorf("suggestion failed: %w", err)
		}
		cmd.Println(suggestion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
