package importer

import (
	"strings"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
)

// filmSimTags assigns baseline tags per standardized film simulation.
var filmSimTags = map[string][]string{
	"Classic Chrome":       {"street", "documentary", "muted", "natural", "travel"},
	"Classic Neg":          {"street", "contrasty", "urban", "city"},
	"Velvia":               {"landscape", "vibrant", "nature", "travel"},
	"Astia":                {"portrait", "soft", "pastel", "dreamy"},
	"Pro Neg Hi":           {"portrait", "soft", "filmic", "indoor"},
	"Pro Neg Std":          {"portrait", "natural", "soft", "golden_hour"},
	"Eterna":               {"cinematic", "moody", "muted", "night"},
	"Eterna Bleach Bypass": {"cinematic", "dramatic", "contrasty", "moody"},
	"Nostalgic Neg":        {"vintage", "warm", "filmic", "portrait"},
	"Acros":                {"monochrome", "street", "portrait"},
	"Acros+R":              {"monochrome", "contrasty", "dramatic", "street"},
	"Provia":               {"natural", "neutral", "travel", "landscape", "daylight"},
	"Reala Ace":            {"natural", "portrait", "soft", "daylight"},
}

// nameRules add tags for keywords found in the recipe's name, applied in
// order; several rules may fire for one name.
var nameRules = []struct {
	keywords []string
	tags     []string
}{
	{[]string{"portra", "portrait"}, []string{"portrait", "warm", "filmic", "golden_hour", "soft_light"}},
	{[]string{"kodak"}, []string{"filmic", "vintage", "warm"}},
	{[]string{"fujicolor", "superia", "reala"}, []string{"filmic", "natural", "daylight"}},
	{[]string{"natura"}, []string{"low_light", "indoor", "night"}},
	{[]string{"velvia"}, []string{"vibrant", "landscape", "nature"}},
	{[]string{"ektachrome"}, []string{"vibrant", "travel", "daylight"}},
	{[]string{"vision", "cine"}, []string{"cinematic", "moody"}},
	{[]string{"night", "neon"}, []string{"night", "low_light", "urban", "city"}},
	{[]string{"golden", "sunset"}, []string{"golden_hour", "warm", "portrait"}},
	{[]string{"blue hour"}, []string{"blue_hour", "cool", "moody"}},
	{[]string{"indoor", "low light"}, []string{"indoor", "low_light"}},
	{[]string{"summer", "sun"}, []string{"summer", "warm", "daylight", "beach"}},
	{[]string{"autumn", "fall"}, []string{"autumn", "warm", "earthy"}},
	{[]string{"winter", "cold"}, []string{"winter", "cool"}},
	{[]string{"spring"}, []string{"spring", "soft", "pastel"}},
	{[]string{"vintage", "retro", "nostalgic"}, []string{"vintage", "filmic"}},
	{[]string{"cinematic", "cinema", "movie"}, []string{"cinematic", "moody", "dramatic"}},
	{[]string{"street"}, []string{"street", "urban", "city", "documentary"}},
	{[]string{"landscape"}, []string{"landscape", "nature", "travel"}},
	{[]string{"b&w", "black", "mono"}, []string{"monochrome"}},
	{[]string{"pastel", "soft", "dreamy"}, []string{"pastel", "soft", "dreamy"}},
	{[]string{"california", "beach", "pacific"}, []string{"beach", "summer", "travel"}},
	{[]string{"urban", "city"}, []string{"urban", "city", "street"}},
}

// AssignTags derives a recipe's tag set from its film simulation, settings,
// and name keywords. Tags are assigned once at import time and deduplicated;
// names not in the stored vocabulary are skipped at association time.
func AssignTags(r *database.Recipe) []string {
	var tags []string

	tags = append(tags, filmSimTags[r.FilmSimulation]...)

	// Color temperature from white balance shifts
	red := r.Settings.WhiteBalanceShiftRed
	blue := r.Settings.WhiteBalanceShiftBlue
	if red > 2 || blue < -2 {
		tags = append(tags, "warm", "golden_hour")
	} else if blue > 2 || red < -2 {
		tags = append(tags, "cool", "overcast")
	} else {
		tags = append(tags, "neutral", "natural")
	}

	// Tone curve shape
	highlight := r.Settings.Highlight
	shadow := r.Settings.Shadow
	if highlight > 0 && shadow < 0 {
		tags = append(tags, "contrasty", "dramatic")
	} else if highlight < 0 && shadow > 0 {
		tags = append(tags, "soft", "dreamy")
	}
	if shadow > 1 {
		tags = append(tags, "low_light", "indoor")
	}

	if r.Settings.GrainEffect == database.EffectStrong {
		tags = append(tags, "filmic", "vintage", "street")
	}

	if r.Settings.ColorChromeEffect == database.EffectStrong {
		tags = append(tags, "vibrant", "nature", "landscape")
	}

	if r.Settings.DynamicRange == database.DR400 {
		tags = append(tags, "landscape", "daylight", "harsh_light")
	}

	if r.Settings.Color >= 2 {
		tags = append(tags, "vibrant")
	} else if r.Settings.Color <= -2 {
		tags = append(tags, "muted", "pastel")
	}

	nameLower := strings.ToLower(r.Name)
	for _, rule := range nameRules {
		for _, kw := range rule.keywords {
			if strings.Contains(nameLower, kw) {
				tags = append(tags, rule.tags...)
				break
			}
		}
	}

	return dedupe(tags)
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
