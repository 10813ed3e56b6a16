package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
	"github.com/filmrecipes/fujirecipes-mcp/internal/recommend"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []database.Recipe:
		return recipesTable(w, v)
	case *database.Recipe:
		return recipeDetail(w, v)
	case []database.Tag:
		return tagsTable(w, v)
	case []recommend.Recommendation:
		return recommendationsDetail(w, v)
	case recommend.Input:
		return inputDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recipesTable(w io.Writer, recipes []database.Recipe) error {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("NAME", "FILM SIMULATION", "SOURCE", "TAGS")

	for _, r := range recipes {
		if err := table.Append([]string{
			truncate(r.Name, 30),
			r.FilmSimulation,
			r.Source,
			truncate(strings.Join(r.Tags, ", "), 45),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func tagsTable(w io.Writer, tags []database.Tag) error {
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("CATEGORY", "TAG")

	for _, t := range tags {
		if err := table.Append([]string{t.Category, t.Name}); err != nil {
			return err
		}
	}

	return table.Render()
}

func recipeDetail(w io.Writer, r *database.Recipe) error {
	fmt.Fprintf(w, "Name:            %s\n", r.Name)
	fmt.Fprintf(w, "Film simulation: %s\n", r.FilmSimulation)
	if r.Description != "" {
		fmt.Fprintf(w, "Description:     %s\n", r.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintf(w, "  White balance:        %s (R%+d B%+d)\n",
		r.Settings.WhiteBalance, r.Settings.WhiteBalanceShiftRed, r.Settings.WhiteBalanceShiftBlue)
	fmt.Fprintf(w, "  Dynamic range:        %s\n", r.Settings.DynamicRange)
	fmt.Fprintf(w, "  Highlight / Shadow:   %+d / %+d\n", r.Settings.Highlight, r.Settings.Shadow)
	fmt.Fprintf(w, "  Color:                %+d\n", r.Settings.Color)
	fmt.Fprintf(w, "  Sharpness:            %+d\n", r.Settings.Sharpness)
	fmt.Fprintf(w, "  Noise reduction:      %+d\n", r.Settings.NoiseReduction)
	fmt.Fprintf(w, "  Clarity:              %+d\n", r.Settings.Clarity)
	fmt.Fprintf(w, "  Grain:                %s", r.Settings.GrainEffect)
	if r.Settings.GrainEffect != database.EffectOff && r.Settings.GrainSize != "" {
		fmt.Fprintf(w, " (%s)", r.Settings.GrainSize)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Color chrome:         %s\n", r.Settings.ColorChromeEffect)
	fmt.Fprintf(w, "  Color chrome FX blue: %s\n", r.Settings.ColorChromeFXBlue)
	fmt.Fprintf(w, "  Exposure comp:        %s\n", r.Settings.ExposureCompensation)

	if len(r.Tags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Tags:    %s\n", strings.Join(r.Tags, ", "))
	}
	if len(r.Cameras) > 0 {
		fmt.Fprintf(w, "Cameras: %s\n", strings.Join(r.Cameras, ", "))
	}

	if r.Author != nil && *r.Author != "" {
		fmt.Fprintf(w, "Author:  %s\n", *r.Author)
	}
	if r.SourceURL != nil && *r.SourceURL != "" {
		fmt.Fprintf(w, "Source:  %s\n", *r.SourceURL)
	}

	return nil
}

func recommendationsDetail(w io.Writer, recs []recommend.Recommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}

	for i, rec := range recs {
		fmt.Fprintf(w, "%d. %s  (%d%% match)\n", i+1, rec.Recipe.Name, rec.Score)
		fmt.Fprintf(w, "   Film simulation: %s\n", rec.Recipe.FilmSimulation)
		if len(rec.MatchedTags) > 0 {
			fmt.Fprintf(w, "   Matched tags:    %s\n", strings.Join(rec.MatchedTags, ", "))
		}
		fmt.Fprintf(w, "   %s\n", rec.Explanation)
		if i < len(recs)-1 {
			fmt.Fprintln(w)
		}
	}

	return nil
}

func inputDetail(w io.Writer, in recommend.Input) error {
	fmt.Fprintln(w, "Parsed parameters:")
	for _, category := range recommend.Categories {
		value := in.Get(category)
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "  %-16s %s\n", string(category)+":", value)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
