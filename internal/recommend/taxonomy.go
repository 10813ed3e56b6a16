package recommend

// Category is one of the six fixed axes of structured shooting input.
type Category string

const (
	CategoryLighting        Category = "lighting"
	CategorySubject         Category = "subject"
	CategoryMood            Category = "mood"
	CategoryColorPreference Category = "colorPreference"
	CategoryLocation        Category = "location"
	CategorySeason          Category = "season"
)

// Categories lists all six categories in canonical order.
var Categories = []Category{
	CategoryLighting,
	CategorySubject,
	CategoryMood,
	CategoryColorPreference,
	CategoryLocation,
	CategorySeason,
}

// valueTags maps each legal category value to the recipe tags it implies.
// One input value may expand to several correlated tags. These tables are
// the single source of truth for both scoring and explanation, and must
// stay consistent with the tag vocabulary assigned at import time.
var valueTags = map[Category]map[string][]string{
	CategoryLighting: {
		"bright_sunlight": {"daylight", "harsh_light"},
		"golden_hour":     {"golden_hour", "soft_light"},
		"blue_hour":       {"blue_hour", "low_light"},
		"overcast":        {"overcast", "soft_light"},
		"indoor":          {"indoor", "low_light"},
		"night":           {"night", "low_light"},
		"mixed":           {"indoor", "daylight"},
	},
	CategorySubject: {
		"portrait":     {"portrait"},
		"street":       {"street", "urban", "documentary"},
		"landscape":    {"landscape", "nature"},
		"architecture": {"architecture", "urban"},
		"nature":       {"nature", "landscape"},
		"food":         {"food", "indoor"},
		"travel":       {"travel", "documentary", "street"},
		"event":        {"documentary", "portrait", "indoor"},
	},
	CategoryMood: {
		"cinematic": {"cinematic", "dramatic", "moody"},
		"vintage":   {"vintage", "filmic", "warm"},
		"modern":    {"modern", "contrasty"},
		"dreamy":    {"dreamy", "soft", "pastel"},
		"moody":     {"moody", "dramatic", "contrasty"},
		"natural":   {"natural", "soft"},
		"dramatic":  {"dramatic", "contrasty", "moody"},
		"minimal":   {"modern", "soft", "muted"},
	},
	CategoryColorPreference: {
		"warm":        {"warm", "earthy"},
		"cool":        {"cool"},
		"neutral":     {"neutral", "natural"},
		"vibrant":     {"vibrant"},
		"muted":       {"muted", "pastel"},
		"bw":          {"monochrome"},
		"teal_orange": {"teal_orange", "cinematic"},
	},
	CategoryLocation: {
		"city":   {"city", "urban", "street"},
		"nature": {"nature", "mountain"},
		"beach":  {"beach", "summer"},
		"cafe":   {"cafe", "indoor"},
		"studio": {"studio", "indoor"},
		"home":   {"indoor"},
	},
	CategorySeason: {
		"summer": {"summer", "vibrant"},
		"autumn": {"autumn", "warm", "earthy"},
		"winter": {"winter", "cool"},
		"spring": {"spring", "pastel"},
	},
}

// categoryWeights gives each category's relative importance. Lighting and
// subject dominate; the six weights sum to 1.0.
var categoryWeights = map[Category]float64{
	CategoryLighting:        0.20,
	CategorySubject:         0.20,
	CategoryMood:            0.175,
	CategoryColorPreference: 0.175,
	CategoryLocation:        0.125,
	CategorySeason:          0.125,
}

// ValidValue reports whether value is a member of the category's closed
// enumeration.
func ValidValue(category Category, value string) bool {
	values, ok := valueTags[category]
	if !ok {
		return false
	}
	_, ok = values[value]
	return ok
}

// TagsFor returns the tags a category value expands to, or nil when the
// value is not part of the enumeration.
func TagsFor(category Category, value string) []string {
	return valueTags[category][value]
}

// Weight returns the scoring weight of a category.
func Weight(category Category) float64 {
	return categoryWeights[category]
}

// Values returns the legal values of a category, unordered.
func Values(category Category) []string {
	values := make([]string, 0, len(valueTags[category]))
	for v := range valueTags[category] {
		values = append(values, v)
	}
	return values
}

// Tag families used by the explanation generator to decide whether a
// matched tag supports a sentence about a given category.
var (
	lightingFamily = tagSet(
		"daylight", "golden_hour", "blue_hour", "overcast", "indoor",
		"low_light", "night", "harsh_light", "soft_light",
	)
	subjectFamily = tagSet(
		"portrait", "street", "landscape", "architecture", "nature",
		"food", "travel", "documentary",
	)
	moodFamily = tagSet(
		"cinematic", "vintage", "modern", "moody", "dreamy",
		"contrasty", "soft", "dramatic", "natural", "filmic",
	)
)

func tagSet(tags ...string) map[string]bool {
	s := make(map[string]bool, len(tags))
	for _, t := range tags {
		s[t] = true
	}
	return s
}

// simDescriptions holds a canned characterization per known film simulation,
// appended to explanations when the recommended recipe uses one.
var simDescriptions = map[string]string{
	"Classic Chrome": "Classic Chrome provides a timeless, muted film look",
	"Velvia":         "Velvia delivers vibrant, saturated colors",
	"Astia":          "Astia offers soft, pleasing skin tones",
	"Pro Neg Hi":     "Pro Neg Hi gives smooth gradations with controlled contrast",
	"Pro Neg Std":    "Pro Neg Std provides natural skin reproduction",
	"Eterna":         "Eterna creates a cinematic, understated look",
	"Classic Neg":    "Classic Neg adds punchy contrast with unique color rendering",
	"Acros":          "Acros delivers smooth, fine-grained black and white",
	"Acros+R":        "Acros with red filter enhances contrast and drama",
	"Provia":         "Provia provides accurate, balanced colors",
	"Nostalgic Neg":  "Nostalgic Neg creates warm, amber-tinted memories",
}
