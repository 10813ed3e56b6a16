package importer

import (
	"testing"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
)

func hasTag(tags []string, name string) bool {
	for _, t := range tags {
		if t == name {
			return true
		}
	}
	return false
}

func TestAssignTagsFromFilmSimulation(t *testing.T) {
	recipe := &database.Recipe{
		Name:           "Plain",
		FilmSimulation: "Eterna",
	}

	tags := AssignTags(recipe)
	for _, want := range []string{"cinematic", "moody", "muted", "night"} {
		if !hasTag(tags, want) {
			t.Errorf("expected tag %q, got %v", want, tags)
		}
	}
}

func TestAssignTagsFromSettings(t *testing.T) {
	recipe := &database.Recipe{
		Name:           "Plain",
		FilmSimulation: "Provia",
		Settings: database.Settings{
			WhiteBalanceShiftRed:  4,
			WhiteBalanceShiftBlue: -5,
			Highlight:             2,
			Shadow:                -1,
			GrainEffect:           database.EffectStrong,
			ColorChromeEffect:     database.EffectStrong,
			DynamicRange:          database.DR400,
			Color:                 3,
		},
	}

	tags := AssignTags(recipe)
	checks := []string{
		"warm", "golden_hour", // warm white balance shift
		"contrasty", "dramatic", // raised highlights, lowered shadows
		"filmic", "vintage", "street", // strong grain
		"vibrant", "nature", // strong color chrome
		"landscape", "daylight", "harsh_light", // DR400
	}
	for _, want := range checks {
		if !hasTag(tags, want) {
			t.Errorf("expected tag %q, got %v", want, tags)
		}
	}
	if hasTag(tags, "neutral") {
		t.Error("warm-shifted recipe must not be tagged neutral")
	}
}

func TestAssignTagsNeutralShift(t *testing.T) {
	recipe := &database.Recipe{
		Name:           "Plain",
		FilmSimulation: "Astia",
		Settings: database.Settings{
			WhiteBalanceShiftRed:  1,
			WhiteBalanceShiftBlue: -1,
		},
	}

	tags := AssignTags(recipe)
	if !hasTag(tags, "neutral") || !hasTag(tags, "natural") {
		t.Errorf("expected neutral/natural for balanced shifts, got %v", tags)
	}
}

func TestAssignTagsCoolShift(t *testing.T) {
	recipe := &database.Recipe{
		Name:           "Plain",
		FilmSimulation: "Provia",
		Settings: database.Settings{
			WhiteBalanceShiftBlue: 4,
		},
	}

	tags := AssignTags(recipe)
	if !hasTag(tags, "cool") || !hasTag(tags, "overcast") {
		t.Errorf("expected cool/overcast for blue shift, got %v", tags)
	}
}

func TestAssignTagsLiftedShadows(t *testing.T) {
	recipe := &database.Recipe{
		Name:           "Plain",
		FilmSimulation: "Astia",
		Settings: database.Settings{
			Highlight: -2,
			Shadow:    2,
		},
	}

	tags := AssignTags(recipe)
	for _, want := range []string{"soft", "dreamy", "low_light", "indoor"} {
		if !hasTag(tags, want) {
			t.Errorf("expected tag %q, got %v", want, tags)
		}
	}
}

func TestAssignTagsFromName(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Kodak Portra 400", []string{"portrait", "warm", "filmic", "golden_hour", "soft_light", "vintage"}},
		{"Neon Nights", []string{"night", "low_light", "urban", "city"}},
		{"Autumn Leaves", []string{"autumn", "warm", "earthy"}},
		{"CineStill 800T", []string{"cinematic", "moody"}},
		{"Pacific Blues", []string{"beach", "summer", "travel"}},
		{"Street Candid", []string{"street", "urban", "city", "documentary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := &database.Recipe{Name: tt.name, FilmSimulation: "Provia"}
			tags := AssignTags(recipe)
			for _, want := range tt.want {
				if !hasTag(tags, want) {
					t.Errorf("expected tag %q for %q, got %v", want, tt.name, tags)
				}
			}
		})
	}
}

func TestAssignTagsDeduplicates(t *testing.T) {
	// Velvia simulation and "landscape" in the name both contribute
	// landscape/nature/travel
	recipe := &database.Recipe{Name: "Velvia Landscape", FilmSimulation: "Velvia"}

	tags := AssignTags(recipe)
	seen := make(map[string]int)
	for _, tag := range tags {
		seen[tag]++
		if seen[tag] > 1 {
			t.Errorf("duplicate tag %q in %v", tag, tags)
		}
	}
}

func TestAssignTagsMutedColor(t *testing.T) {
	recipe := &database.Recipe{
		Name:           "Plain",
		FilmSimulation: "Provia",
		Settings:       database.Settings{Color: -3},
	}

	tags := AssignTags(recipe)
	if !hasTag(tags, "muted") || !hasTag(tags, "pastel") {
		t.Errorf("expected muted/pastel for desaturated color, got %v", tags)
	}
}
