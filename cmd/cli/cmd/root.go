package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "planctl",
	Short: "Planctl generates, tracks and exports a business playbook",
	Long: `planctl is the command-line interface for Planbook, an AI-assisted
business planning tool.

You describe your business once, generate a full playbook (diagnosis, money
model, offers, marketing plan, KPIs), then export it as styled PDF documents
or a complete ZIP kit.

Common workflows:

  Describe your business:
    planctl plan set --business-type "gym" --location "Austin, TX"

  Generate the playbook:
    planctl generate

  Export a single document:
    planctl export pdf full

  Export the complete kit:
    planctl export zip

  Record this week's numbers:
    planctl kpi save --set leads=24 --set sales=3

  Get an AI debrief of your week:
    planctl debrief

Configuration:
  Settings come from environment variables (or a .env file):
    PLANBOOK_STATE_FILE    Path of the saved plan (default: ~/.planbook/state.json)
    PLANBOOK_EXPORT_DIR    Where exports are written (default: ./exports)
    PLANBOOK_AI_PROVIDER   "anthropic", "openai" or "openai_compatible"
    PLANBOOK_AI_API_KEY    API key for the provider`,
	// Runtime failures should read as errors, not as usage mistakes.
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".planctl"
		viper.AddConfigPath(home)
		viper.SetConfigName(".planctl")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "PLANBOOK_VARNAME"
	viper.SetEnvPrefix("PLANBOOK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.planctl.yaml)")

	rootCmd.PersistentFlags().String("state-file", "", "path of the saved plan state")
	viper.BindPFlag("state_file", rootCmd.PersistentFlags().Lookup("state-file"))

	rootCmd.PersistentFlags().StringP("export-dir", "o", "", "directory exports are written to")
	viper.BindPFlag("export_dir", rootCmd.PersistentFlags().Lookup("export-dir"))
}
