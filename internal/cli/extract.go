package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/filmrecipes/fujirecipes-mcp/internal/config"
	"github.com/filmrecipes/fujirecipes-mcp/internal/output"
)

var extractCmd = &cobra.Command{
	Use:   "extract <description>",
	Short: "Parse a free-text description into structured parameters",
	Long: `Parse a free-text shooting description into the structured
parameters the recommendation engine matches against, without running a
recommendation.

Examples:
  fujirecipes extract "warm autumn portraits at golden hour"
  fujirecipes extract "rainy city night" -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	input := buildExtractor(cfg).Extract(ctx, text)

	return output.Output(outputFmt, input)
}
