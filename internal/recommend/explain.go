package recommend

import (
	"strings"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
)

const genericExplanation = "A versatile recipe that works well for your shooting scenario."

// Explain derives a short justification for a recommended recipe from the
// tags that matched and the original input. Rules fire in fixed order and
// each appends at most one sentence; every clause ends with a period.
func Explain(recipe database.Recipe, matchedTags []string, input Input) string {
	var reasons []string

	matchesFamily := func(family map[string]bool) bool {
		for _, tag := range matchedTags {
			if family[tag] {
				return true
			}
		}
		return false
	}

	if input.Lighting != "" && matchesFamily(lightingFamily) {
		reasons = append(reasons, "Works well in "+strings.ReplaceAll(input.Lighting, "_", " ")+" conditions")
	}

	if input.Subject != "" && matchesFamily(subjectFamily) {
		reasons = append(reasons, "Excellent for "+input.Subject+" photography")
	}

	if input.Mood != "" && matchesFamily(moodFamily) {
		reasons = append(reasons, "Creates a "+input.Mood+" aesthetic")
	}

	// Color preference always gets a sentence, matched or not
	switch input.ColorPreference {
	case "":
	case "bw":
		reasons = append(reasons, "Perfect for black and white photography")
	case "teal_orange":
		reasons = append(reasons, "Delivers cinematic teal and orange color grading")
	default:
		reasons = append(reasons, "Produces "+input.ColorPreference+" tones")
	}

	if desc, ok := simDescriptions[recipe.FilmSimulation]; ok {
		reasons = append(reasons, desc)
	}

	if len(reasons) == 0 {
		return genericExplanation
	}
	return strings.Join(reasons, ". ") + "."
}
