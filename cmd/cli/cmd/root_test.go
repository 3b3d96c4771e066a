package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetViper() {
	viper.Reset()
	viper.SetEnvPrefix("PLANBOOK")
	viper.AutomaticEnv()
}

// resetFlags clears parsed flag state so each test run starts fresh.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return buf.String()
}

// executeErr runs the root command expecting failure; it returns the error
// and the combined output so callers can assert on both.
func executeErr(t *testing.T, args ...string) (error, string) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("command %v succeeded, want error; output: %s", args, buf.String())
	}
	return err, buf.String()
}

// useTempState points the state file and export dir at a temp directory.
func useTempState(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	stateFile := filepath.Join(dir, "state.json")
	t.Setenv("PLANBOOK_STATE_FILE", stateFile)
	t.Setenv("PLANBOOK_EXPORT_DIR", filepath.Join(dir, "exports"))
	resetViper()
	return stateFile
}

func TestRootCommand_ExecuteReturnsNoError(t *testing.T) {
	resetViper()

	rootCmd.SetArgs([]string{"--help"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("root command should execute without error: %v", err)
	}
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	want := map[string]bool{
		"plan":     false,
		"generate": false,
		"suggest":  false,
		"export":   false,
		"kpi":      false,
		"debrief":  false,
		"video":    false,
		"status":   false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestRootCommand_EnvVarBinding(t *testing.T) {
	resetViper()

	t.Setenv("PLANBOOK_STATE_FILE", "/tmp/planbook-test-state.json")
	t.Setenv("PLANBOOK_EXPORT_DIR", "/tmp/planbook-test-exports")

	if got := viper.GetString("state_file"); got != "/tmp/planbook-test-state.json" {
		t.Errorf("expected state file from env var, got: %s", got)
	}
	if got := viper.GetString("export_dir"); got != "/tmp/planbook-test-exports" {
		t.Errorf("expected export dir from env var, got: %s", got)
	}
}

func TestExecute_ReturnsError(t *testing.T) {
	resetViper()

	rootCmd.SetArgs([]string{"unknown-command-xyz"})
	if err := Execute(); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestLoadApp_FlagOverridesEnv(t *testing.T) {
	useTempState(t)
	viper.Set("state_file", "/tmp/override-state.json")
	defer resetViper()

	app, err := loadApp()
	if err != nil {
		t.Fatalf("loadApp() error: %v", err)
	}
	if app.cfg.StateFile != "/tmp/override-state.json" {
		t.Errorf("expected flag override to win, got: %s", app.cfg.StateFile)
	}
}

func TestNewGenerator_RequiresAPIKey(t *testing.T) {
	useTempState(t)
	t.Setenv("PLANBOOK_AI_API_KEY", "")

	app, err := loadApp()
	if err != nil {
		t.Fatalf("loadApp() error: %v", err)
	}
	if _, err := app.newGenerator(); err == nil {
		t.Error("expected error when no API key is configured")
	}
}
