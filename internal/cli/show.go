package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filmrecipes/fujirecipes-mcp/internal/config"
	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
	"github.com/filmrecipes/fujirecipes-mcp/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <recipe>",
	Short: "Show recipe details",
	Long: `Show full details of a recipe including settings, tags, and
compatible cameras. Accepts a recipe name (case-insensitive) or ID.

Examples:
  fujirecipes show "Kodachrome 64"
  fujirecipes show "kodachrome 64" -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	identifier := args[0]

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Try name first, then ID
	recipe, err := db.GetRecipeByName(ctx, identifier)
	if err != nil {
		return fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		recipe, err = db.GetRecipeByID(ctx, identifier)
		if err != nil {
			return fmt.Errorf("failed to get recipe: %w", err)
		}
	}
	if recipe == nil {
		return fmt.Errorf("recipe not found: %s", identifier)
	}

	return output.Output(outputFmt, recipe)
}
