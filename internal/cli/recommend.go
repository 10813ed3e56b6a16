package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filmrecipes/fujirecipes-mcp/internal/config"
	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
	"github.com/filmrecipes/fujirecipes-mcp/internal/nlp"
	"github.com/filmrecipes/fujirecipes-mcp/internal/output"
	"github.com/filmrecipes/fujirecipes-mcp/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [description]",
	Short: "Recommend recipes for your shooting conditions",
	Long: `Recommend Fujifilm recipes for a shooting scenario. Conditions can
be given as structured flags or as a free-text description. Free text is
parsed with the configured classifier when available, otherwise with the
built-in keyword rules.

Examples:
  fujirecipes recommend --lighting=golden_hour --subject=portrait
  fujirecipes recommend "moody night street photography in Tokyo"
  fujirecipes recommend --mood=cinematic --color=teal_orange -o json`,
	RunE: runRecommend,
}

var (
	recLighting string
	recSubject  string
	recMood     string
	recColor    string
	recLocation string
	recSeason   string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recLighting, "lighting", "", "Lighting conditions (bright_sunlight, golden_hour, blue_hour, overcast, indoor, night, mixed)")
	recommendCmd.Flags().StringVar(&recSubject, "subject", "", "Main subject (portrait, street, landscape, architecture, nature, food, travel, event)")
	recommendCmd.Flags().StringVar(&recMood, "mood", "", "Desired mood (cinematic, vintage, modern, dreamy, moody, natural, dramatic, minimal)")
	recommendCmd.Flags().StringVar(&recColor, "color", "", "Color preference (warm, cool, neutral, vibrant, muted, bw, teal_orange)")
	recommendCmd.Flags().StringVar(&recLocation, "location", "", "Shooting location (city, nature, beach, cafe, studio, home)")
	recommendCmd.Flags().StringVar(&recSeason, "season", "", "Season (summer, autumn, winter, spring)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
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

	engine := recommend.NewEngine(db, cfg.Recommend.MaxResults)

	input := recommend.Input{
		Lighting:        recLighting,
		Subject:         recSubject,
		Mood:            recMood,
		ColorPreference: recColor,
		Location:        recLocation,
		Season:          recSeason,
	}

	// Free text takes over when no structured flags are set
	if len(args) > 0 && input.IsEmpty() {
		text := strings.Join(args, " ")
		input = buildExtractor(cfg).Extract(ctx, text)

		if outputFmt != "json" {
			if err := output.Output(outputFmt, input); err != nil {
				return err
			}
			fmt.Println()
		}
	}

	recs, err := engine.Recommend(ctx, input)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	return output.Output(outputFmt, recs)
}

// buildExtractor wires the free-text parser from config. The classifier
// client is only constructed when enabled; an unconfigured extractor
// falls back to keyword rules.
func buildExtractor(cfg *config.Config) *nlp.Extractor {
	var client *nlp.Client
	if cfg.Classifier.Enabled {
		client = nlp.NewClient(cfg.Classifier.BaseURL, cfg.Classifier.Model, cfg.Classifier.Timeout())
	}
	return nlp.NewExtractor(client, nil)
}
