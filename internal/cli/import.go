package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filmrecipes/fujirecipes-mcp/internal/config"
	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
	"github.com/filmrecipes/fujirecipes-mcp/internal/importer"
	"github.com/filmrecipes/fujirecipes-mcp/internal/output"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import recipes from a JSON file",
	Long: `Import recipes from a JSON file containing an array of recipe
records. Records are normalized and auto-tagged before storage. Existing
recipes (matched by source URL, then name) are skipped unless --update
is given.

Examples:
  fujirecipes import recipes.json
  fujirecipes import recipes.json --update`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importUpdate bool

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importUpdate, "update", false, "Update existing recipes instead of skipping them")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var records []importer.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	summary := importer.New(db).Import(ctx, records, importer.Options{
		SkipExisting:   !importUpdate,
		UpdateExisting: importUpdate,
	})

	if outputFmt == "json" {
		return output.JSON(summary)
	}

	fmt.Printf("Imported: %d  Updated: %d  Skipped: %d  Failed: %d\n",
		summary.Imported, summary.Updated, summary.Skipped, summary.Failed)
	for _, d := range summary.Details {
		if d.Status == "failed" {
			fmt.Printf("  failed: %s (%s)\n", d.Name, d.Error)
		}
	}
	return nil
}
