package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filmrecipes/fujirecipes-mcp/internal/config"
	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
	"github.com/filmrecipes/fujirecipes-mcp/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	Long: `List all recipes in the corpus, ordered by name.

Examples:
  fujirecipes list             # List all recipes
  fujirecipes list -o json     # Output as JSON`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	recipes, err := db.ListRecipes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	return output.Output(outputFmt, recipes)
}
