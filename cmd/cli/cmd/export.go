package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"planbook/internal/docs"
	"planbook/internal/export"
	"planbook/internal/export/offline"
	"planbook/internal/model"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the playbook as PDFs, a ZIP kit or an offline page",
}

var exportPdfCmd = &cobra.Command{
	Use:   "pdf [document]",
	Short: "Export one document as a single-page PDF",
	Long: `Export one playbook document as a PDF whose single page matches the
rendered document exactly.

Available documents:
  ` + strings.Join(documentNames(), ", ") + `

Asset documents need a selector:
  planctl export pdf single-asset --offer "Flagship Offer" --asset "Cold Call Script"
  planctl export pdf asset-bundle --offer "Flagship Offer"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := docs.DocumentType(args[0])
		if !doc.Valid() {
			return fmt.Errorf("unknown document %q; available: %s", args[0], strings.Join(documentNames(), ", "))
		}

		app, err := loadApp()
		if err != nil {
			return err
		}

		dctx, err := buildDocContext(cmd, app, doc)
		if err != nil {
			return err
		}

		orch, rast, err := app.newOrchestrator(progressPrinter(cmd))
		if err != nil {
			return err
		}
		defer rast.Close()

		path, err := orch.ExportSingle(context.Background(), doc, *dctx)
		cmd.Println()
		if err != nil {
			if errors.Is(err, export.ErrExportBusy) {
				return fmt.Errorf("an export is already in progress, try again when it finishes")
			}
			return err
		}
		cmd.Printf("✓ Saved %s\n", path)
		return nil
	},
}

var exportZipCmd = &cobra.Command{
	Use:   "zip",
	Short: "Export the complete playbook kit as one ZIP archive",
	Long: `Render every playbook document plus every offer asset into PDFs and
pack them, organized into numbered folders, into a single ZIP archive.

Failed documents are reported and skipped; the archive still contains
everything that succeeded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		dctx, err := buildDocContext(cmd, app, docs.DocFull)
		if err != nil {
			return err
		}

		orch, rast, err := app.newOrchestrator(progressPrinter(cmd))
		if err != nil {
			return err
		}
		defer rast.Close()

		result, err := orch.RunBulk(context.Background(), *dctx)
		cmd.Println()
		if err != nil {
			if errors.Is(err, export.ErrExportBusy) {
				return fmt.Errorf("an export is already in progress, try again when it finishes")
			}
			return err
		}

		cmd.Printf("✓ Kit exported to %s\n", result.ArchivePath)
		cmd.Printf("Documents: %d of %d succeeded\n", result.Succeeded, result.Total)
		if result.Failed > 0 {
			cmd.Printf("%s%d document(s) failed and were left out of the archive%s\n", colorYellow, result.Failed, colorReset)
		}
		return nil
	},
}

var exportHtmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Export the playbook as one self-contained offline HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		dctx, err := buildDocContext(cmd, app, docs.DocFull)
		if err != nil {
			return err
		}

		page, err := offline.Build(*dctx)
		if err != nil {
			return fmt.Errorf("failed to build the page: %w", err)
		}

		if err := os.MkdirAll(app.cfg.ExportDir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
		path := filepath.Join(app.cfg.ExportDir, "Business_Playbook.html")
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		cmd.Printf("✓ Saved %s\n", path)
		return nil
	},
}

// buildDocContext assembles the render context from saved state plus the
// --offer/--asset selectors.
func buildDocContext(cmd *cobra.Command, app *appEnv, doc docs.DocumentType) (*docs.Context, error) {
	st := app.store.Load()
	if st.Playbook == nil {
		return nil, fmt.Errorf("no playbook found; run 'planctl generate' first")
	}

	dctx := &docs.Context{
		Playbook:     st.Playbook,
		BusinessData: &st.BusinessData,
		KpiHistory:   st.KpiHistory,
	}

	offerName, _ := cmd.Flags().GetString("offer")
	assetName, _ := cmd.Flags().GetString("asset")

	if doc != docs.DocSingleAsset && doc != docs.DocAssetBundle {
		return dctx, nil
	}
	if offerName == "" {
		return nil, fmt.Errorf("document %s needs --offer", doc)
	}

	offer := findOffer(st.Playbook, offerName)
	if offer == nil {
		return nil, fmt.Errorf("no offer named %q in the playbook", offerName)
	}
	dctx.AssetBundle = offer

	if doc == docs.DocSingleAsset {
		if assetName == "" {
			return nil, fmt.Errorf("document %s needs --asset", doc)
		}
		for _, item := range offer.Stack {
			if item.Asset != nil && item.Asset.Name == assetName {
				dctx.SingleAsset = item.Asset
				return dctx, nil
			}
		}
		return nil, fmt.Errorf("no asset named %q in offer %q", assetName, offerName)
	}
	return dctx, nil
}

func findOffer(pb *model.GeneratedPlaybook, name string) *model.Offer {
	offers := pb.Offers()
	for i := range offers {
		if offers[i].Name == name {
			return &offers[i]
		}
	}
	return nil
}

// progressPrinter rewrites one terminal line with the current percentage.
func progressPrinter(cmd *cobra.Command) func(pct float64) {
	return func(pct float64) {
		cmd.Printf("\rExporting... %3.0f%%", pct)
	}
}

func documentNames() []string {
	types := docs.AllTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}

func init() {
	exportPdfCmd.Flags().String("offer", "", "offer name for asset documents")
	exportPdfCmd.Flags().String("asset", "", "asset name for single-asset documents")

	exportCmd.AddCommand(exportPdfCmd)
	exportCmd.AddCommand(exportZipCmd)
	exportCmd.AddCommand(exportHtmlCmd)
	rootCmd.AddCommand(exportCmd)
}
