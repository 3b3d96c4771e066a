package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"planbook/internal/genai"
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Generate a promotional video for your core offer",
	Long: `Write a short promotional video script with the AI, submit it to the
rendering service and download the finished video.

Requires PLANBOOK_VIDEO_URL to point at a video rendering service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptOnly, _ := cmd.Flags().GetBool("script-only")

		app, err := loadApp()
		if err != nil {
			return err
		}

		st := app.store.Load()
		if st.Playbook == nil {
			return fmt.Errorf("no playbook found; run 'planctl generate' first")
		}

		gen, err := app.newGenerator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.AITimeout)
		defer cancel()

		script, err := gen.GenerateVideoScript(ctx, *st.Playbook, st.BusinessData)
		if err != nil {
			return fmt.Errorf("script generation failed: %w", err)
		}

		if scriptOnly {
			cmd.Println(script)
			return nil
		}
		if app.cfg.VideoServiceURL == "" {
			return fmt.Errorf("no video service configured; set PLANBOOK_VIDEO_URL or use --script-only")
		}

		client := genai.NewVideoClient(app.cfg.VideoServiceURL, genai.VideoClientOptions{})
		defer client.Close()

		// Video renders take minutes, not seconds; poll on a long leash.
		pollCtx, cancelPoll := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancelPoll()

		jobID, err := client.Submit(pollCtx, script)
		if err != nil {
			return err
		}
		cmd.Printf("Rendering video (job %s)...\n", jobID)

		data, err := client.Poll(pollCtx, jobID, 5*time.Second)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(app.cfg.ExportDir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
		path := filepath.Join(app.cfg.ExportDir, "Promo_Video.mp4")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		cmd.Printf("✓ Saved %s\n", path)
		return nil
	},
}

func init() {
	videoCmd.Flags().Bool("script-only", false, "print the script without rendering a video")
	rootCmd.AddCommand(videoCmd)
}
