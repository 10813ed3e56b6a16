package importer

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
)

// Record is one raw recipe as produced by a scraper or entered by hand.
// Every field is optional; normalization fills defaults.
type Record struct {
	Name                  string   `json:"name"`
	FilmSimulation        string   `json:"filmSimulation"`
	WhiteBalance          string   `json:"whiteBalance"`
	WhiteBalanceShiftRed  int      `json:"whiteBalanceShiftRed"`
	WhiteBalanceShiftBlue int      `json:"whiteBalanceShiftBlue"`
	DynamicRange          string   `json:"dynamicRange"`
	Highlight             int      `json:"highlight"`
	Shadow                int      `json:"shadow"`
	Color                 int      `json:"color"`
	Sharpness             int      `json:"sharpness"`
	NoiseReduction        int      `json:"noiseReduction"`
	GrainEffect           string   `json:"grainEffect"`
	GrainSize             string   `json:"grainSize"`
	ColorChromeEffect     string   `json:"colorChromeEffect"`
	ColorChromeFXBlue     string   `json:"colorChromeFxBlue"`
	Clarity               int      `json:"clarity"`
	ExposureCompensation  string   `json:"exposureCompensation"`
	SampleImages          []string `json:"sampleImages"`
	Source                string   `json:"source"`
	SourceURL             string   `json:"sourceUrl"`
	Author                string   `json:"author"`
}

// filmSimulationMap maps common spellings to standardized names.
var filmSimulationMap = map[string]string{
	"classic chrome":         "Classic Chrome",
	"velvia":                 "Velvia",
	"velvia/vivid":           "Velvia",
	"astia":                  "Astia",
	"astia/soft":             "Astia",
	"provia":                 "Provia",
	"provia/standard":        "Provia",
	"pro neg hi":             "Pro Neg Hi",
	"pro neg. hi":            "Pro Neg Hi",
	"pro negative hi":        "Pro Neg Hi",
	"pro neg std":            "Pro Neg Std",
	"pro neg. std":           "Pro Neg Std",
	"pro negative std":       "Pro Neg Std",
	"pro negative standard":  "Pro Neg Std",
	"eterna":                 "Eterna",
	"eterna/cinema":          "Eterna",
	"eterna bleach bypass":   "Eterna Bleach Bypass",
	"classic neg":            "Classic Neg",
	"classic neg.":           "Classic Neg",
	"classic negative":       "Classic Neg",
	"nostalgic neg":          "Nostalgic Neg",
	"nostalgic neg.":         "Nostalgic Neg",
	"nostalgic negative":     "Nostalgic Neg",
	"acros":                  "Acros",
	"acros+r":                "Acros+R",
	"acros + r":              "Acros+R",
	"acros+g":                "Acros+G",
	"acros + g":              "Acros+G",
	"acros+ye":               "Acros+Ye",
	"acros + ye":             "Acros+Ye",
	"monochrome":             "Monochrome",
	"monochrome+r":           "Monochrome+R",
	"monochrome+g":           "Monochrome+G",
	"monochrome+ye":          "Monochrome+Ye",
	"sepia":                  "Sepia",
	"reala ace":              "Reala Ace",
}

// simPatterns resolve free-form names that the exact map misses, in order.
var simPatterns = []struct {
	substr string
	name   string
}{
	{"nostalgic", "Nostalgic Neg"},
	{"nostalgia", "Nostalgic Neg"},
	{"classic neg", "Classic Neg"},
	{"classic chrome", "Classic Chrome"},
	{"velvia", "Velvia"},
	{"astia", "Astia"},
	{"provia", "Provia"},
	{"acros", "Acros"},
	{"reala", "Reala Ace"},
	{"pro neg", "Pro Neg Hi"},
}

var simKeys struct {
	once sync.Once
	keys []string
}

func simKeysByLength() []string {
	simKeys.once.Do(func() {
		for key := range filmSimulationMap {
			simKeys.keys = append(simKeys.keys, key)
		}
		sort.Slice(simKeys.keys, func(i, j int) bool {
			if len(simKeys.keys[i]) != len(simKeys.keys[j]) {
				return len(simKeys.keys[i]) > len(simKeys.keys[j])
			}
			return simKeys.keys[i] < simKeys.keys[j]
		})
	})
	return simKeys.keys
}

// NormalizeFilmSimulation maps a raw film simulation name onto the
// standardized vocabulary, defaulting to Classic Chrome.
func NormalizeFilmSimulation(raw string) string {
	if raw == "" {
		return "Classic Chrome"
	}

	lower := strings.ToLower(strings.TrimSpace(raw))
	if name, ok := filmSimulationMap[lower]; ok {
		return name
	}

	// A known simulation embedded in longer text; longest names first so
	// "eterna bleach bypass" wins over plain "eterna"
	for _, key := range simKeysByLength() {
		if strings.Contains(lower, key) {
			return filmSimulationMap[key]
		}
	}

	if strings.Contains(lower, "eterna") {
		if strings.Contains(lower, "bleach") {
			return "Eterna Bleach Bypass"
		}
		return "Eterna"
	}

	for _, p := range simPatterns {
		if strings.Contains(lower, p.substr) {
			return p.name
		}
	}

	return "Classic Chrome"
}

var kelvinRe = regexp.MustCompile(`(\d{4})K?`)

// NormalizeWhiteBalance standardizes Kelvin values and preset names.
// Unrecognized values pass through untouched.
func NormalizeWhiteBalance(raw string) string {
	if raw == "" {
		return "Auto"
	}

	if m := kelvinRe.FindStringSubmatch(raw); m != nil {
		return m[1] + "K"
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "auto"):
		return "Auto"
	case strings.Contains(lower, "daylight"), strings.Contains(lower, "sunny"):
		return "Daylight"
	case strings.Contains(lower, "shade"):
		return "Shade"
	case strings.Contains(lower, "cloudy"):
		return "Cloudy"
	case strings.Contains(lower, "incandescent"), strings.Contains(lower, "tungsten"):
		return "Incandescent"
	case strings.Contains(lower, "fluorescent 1"), strings.Contains(lower, "fluorescent1"):
		return "Fluorescent 1"
	case strings.Contains(lower, "fluorescent 2"), strings.Contains(lower, "fluorescent2"):
		return "Fluorescent 2"
	case strings.Contains(lower, "fluorescent 3"), strings.Contains(lower, "fluorescent3"):
		return "Fluorescent 3"
	case strings.Contains(lower, "fluorescent"):
		return "Fluorescent 1"
	case strings.Contains(lower, "underwater"):
		return "Underwater"
	}

	return raw
}

var drRe = regexp.MustCompile(`(\d+)`)

// NormalizeDynamicRange maps any spelling of the three tiers to DR100,
// DR200, or DR400, defaulting to DR100.
func NormalizeDynamicRange(raw string) string {
	if raw == "" {
		return database.DR100
	}
	if m := drRe.FindStringSubmatch(raw); m != nil {
		switch m[1] {
		case "100":
			return database.DR100
		case "200":
			return database.DR200
		case "400":
			return database.DR400
		}
	}
	return database.DR100
}

// NormalizeExposureComp collapses signed zeros, keeps fractional strings.
func NormalizeExposureComp(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" || cleaned == "0" || cleaned == "+0" || cleaned == "-0" {
		return "0"
	}
	return cleaned
}

// simCharacter holds a canned characterization per standardized simulation
// for generated descriptions.
var simCharacter = map[string]string{
	"Classic Chrome":       "muted, documentary-style colors with a timeless aesthetic",
	"Classic Neg":          "punchy contrast with unique, nostalgic color rendering",
	"Velvia":               "vivid, saturated colors perfect for landscapes",
	"Astia":                "soft, pleasing tones ideal for portraits",
	"Provia":               "balanced, natural colors for versatile shooting",
	"Pro Neg Hi":           "smooth gradations with soft contrast for portraits",
	"Pro Neg Std":          "natural skin tones with gentle contrast",
	"Eterna":               "cinematic, understated look with muted colors",
	"Eterna Bleach Bypass": "desaturated, high-contrast cinematic look",
	"Nostalgic Neg":        "warm, amber-tinted vintage feel reminiscent of 1970s photography",
	"Acros":                "smooth, fine-grained black and white with beautiful tonal range",
	"Acros+R":              "high-contrast black and white with enhanced reds for dramatic skies",
	"Acros+G":              "black and white with enhanced greens for nature photography",
	"Acros+Ye":             "black and white with warm contrast and smooth skin tones",
	"Reala Ace":            "natural colors with excellent skin tones and fine detail",
}

// GenerateDescription derives a description from a recipe's settings when
// the source provides none.
func GenerateDescription(r *database.Recipe) string {
	var desc string
	if character, ok := simCharacter[r.FilmSimulation]; ok {
		desc = r.FilmSimulation + " film simulation with " + character
	} else {
		desc = r.FilmSimulation + " film simulation for a unique photographic look"
	}

	var characteristics []string

	red := r.Settings.WhiteBalanceShiftRed
	blue := r.Settings.WhiteBalanceShiftBlue
	if red > 2 || blue < -2 {
		characteristics = append(characteristics, "warm color tones")
	} else if blue > 2 || red < -2 {
		characteristics = append(characteristics, "cool color tones")
	}

	highlight := r.Settings.Highlight
	shadow := r.Settings.Shadow
	if highlight > 0 && shadow < 0 {
		characteristics = append(characteristics, "punchy contrast")
	} else if highlight < 0 && shadow > 0 {
		characteristics = append(characteristics, "soft, lifted shadows")
	} else if shadow > 1 {
		characteristics = append(characteristics, "open shadows for low-light situations")
	}

	switch r.Settings.GrainEffect {
	case database.EffectStrong:
		characteristics = append(characteristics, "prominent film grain for an authentic analog feel")
	case database.EffectWeak:
		characteristics = append(characteristics, "subtle grain texture")
	}

	if r.Settings.ColorChromeEffect == database.EffectStrong {
		characteristics = append(characteristics, "rich, saturated colors")
	}

	switch r.Settings.DynamicRange {
	case database.DR400:
		characteristics = append(characteristics, "extended dynamic range")
	case database.DR200:
		characteristics = append(characteristics, "balanced dynamic range")
	}

	if r.Settings.Sharpness <= -2 {
		characteristics = append(characteristics, "soft rendering")
	} else if r.Settings.Sharpness >= 2 {
		characteristics = append(characteristics, "crisp detail")
	}

	desc += "."
	if len(characteristics) > 0 {
		desc += " Features " + strings.Join(characteristics, ", ") + "."
	}

	return desc
}

// Normalize converts a raw record into a recipe ready for storage: defaults
// filled, names standardized, description generated, tags assigned.
func Normalize(record Record) database.Recipe {
	name := record.Name
	if name == "" {
		name = "Untitled Recipe"
	}

	grainEffect := record.GrainEffect
	if grainEffect == "" {
		grainEffect = database.EffectOff
	}
	grainSize := record.GrainSize
	if grainSize == "" {
		grainSize = database.GrainSmall
	}
	colorChrome := record.ColorChromeEffect
	if colorChrome == "" {
		colorChrome = database.EffectOff
	}
	colorChromeFXBlue := record.ColorChromeFXBlue
	if colorChromeFXBlue == "" {
		colorChromeFXBlue = database.EffectOff
	}
	source := record.Source
	if source == "" {
		source = "manual"
	}
	sampleImages := record.SampleImages
	if sampleImages == nil {
		sampleImages = []string{}
	}

	recipe := database.Recipe{
		Name:           name,
		FilmSimulation: NormalizeFilmSimulation(record.FilmSimulation),
		Settings: database.Settings{
			WhiteBalance:          NormalizeWhiteBalance(record.WhiteBalance),
			WhiteBalanceShiftRed:  record.WhiteBalanceShiftRed,
			WhiteBalanceShiftBlue: record.WhiteBalanceShiftBlue,
			DynamicRange:          NormalizeDynamicRange(record.DynamicRange),
			Highlight:             record.Highlight,
			Shadow:                record.Shadow,
			Color:                 record.Color,
			Sharpness:             record.Sharpness,
			NoiseReduction:        record.NoiseReduction,
			GrainEffect:           grainEffect,
			GrainSize:             grainSize,
			ColorChromeEffect:     colorChrome,
			ColorChromeFXBlue:     colorChromeFXBlue,
			Clarity:               record.Clarity,
			ExposureCompensation:  NormalizeExposureComp(record.ExposureCompensation),
		},
		SampleImages: sampleImages,
		Source:       source,
	}

	if record.SourceURL != "" {
		recipe.SourceURL = &record.SourceURL
	}
	if record.Author != "" {
		recipe.Author = &record.Author
	}

	recipe.Description = GenerateDescription(&recipe)
	recipe.Tags = AssignTags(&recipe)

	return recipe
}
