package nlp

import (
	"strings"

	"github.com/filmrecipes/fujirecipes-mcp/internal/recommend"
)

// keyword is one trigger in a fallback rule. Whole-word keywords only match
// between word boundaries so short words like "old" cannot fire inside
// "oldschool"; everything else matches as a plain substring.
type keyword struct {
	text      string
	wholeWord bool
}

func substr(s string) keyword { return keyword{text: s} }
func word(s string) keyword   { return keyword{text: s, wholeWord: true} }

// rule maps an ordered keyword list to a category value. Within a category,
// the first rule with any matching keyword wins.
type rule struct {
	keywords []keyword
	value    string
}

// fallbackRules holds the deterministic keyword cascade per category,
// evaluated independently. A category with no firing rule stays unset.
var fallbackRules = map[recommend.Category][]rule{
	recommend.CategoryLighting: {
		{[]keyword{substr("sunset"), substr("golden hour"), substr("magic hour")}, "golden_hour"},
		{[]keyword{substr("night"), word("dark"), substr("evening")}, "night"},
		{[]keyword{substr("indoor"), substr("inside")}, "indoor"},
		{[]keyword{substr("overcast"), substr("cloudy"), substr("rainy")}, "overcast"},
		{[]keyword{substr("sunny"), substr("bright"), substr("midday")}, "bright_sunlight"},
		{[]keyword{substr("blue hour"), substr("dusk"), substr("dawn")}, "blue_hour"},
		{[]keyword{substr("low light")}, "indoor"},
	},
	recommend.CategorySubject: {
		{[]keyword{substr("portrait"), substr("people"), substr("person"), substr("face")}, "portrait"},
		{[]keyword{substr("street"), substr("urban")}, "street"},
		{[]keyword{substr("landscape"), substr("scenery"), substr("mountain"), substr("vista")}, "landscape"},
		{[]keyword{substr("architecture"), substr("building")}, "architecture"},
		{[]keyword{substr("nature"), substr("wildlife"), substr("animal"), substr("flower")}, "nature"},
		{[]keyword{substr("food"), substr("restaurant"), substr("dish")}, "food"},
		{[]keyword{substr("travel"), substr("vacation"), substr("trip")}, "travel"},
	},
	recommend.CategoryMood: {
		{[]keyword{substr("cinematic"), substr("film"), substr("movie")}, "cinematic"},
		{[]keyword{substr("vintage"), substr("retro"), word("old"), substr("nostalgic")}, "vintage"},
		{[]keyword{substr("moody"), word("dark"), substr("atmospheric")}, "moody"},
		{[]keyword{substr("dreamy"), word("soft"), substr("ethereal"), substr("airy")}, "dreamy"},
		{[]keyword{substr("dramatic"), substr("intense"), word("bold")}, "dramatic"},
		{[]keyword{substr("natural"), substr("realistic"), substr("sunny"), substr("bright")}, "natural"},
		{[]keyword{substr("modern"), substr("clean"), substr("minimal")}, "minimal"},
	},
	recommend.CategoryColorPreference: {
		{[]keyword{substr("neutral"), substr("natural color"), substr("balanced")}, "neutral"},
		{[]keyword{substr("warm"), substr("orange"), substr("amber")}, "warm"},
		{[]keyword{substr("cool"), substr("blue"), word("cold")}, "cool"},
		{[]keyword{substr("black and white"), substr("b&w"), substr("monochrome"), word("bw")}, "bw"},
		{[]keyword{substr("vibrant"), substr("saturated"), substr("colorful"), substr("punchy"), substr("sunny"), substr("bright")}, "vibrant"},
		{[]keyword{substr("muted"), substr("desaturated"), substr("pastel"), substr("faded")}, "muted"},
		{[]keyword{substr("teal"), substr("hollywood")}, "teal_orange"},
	},
	recommend.CategoryLocation: {
		{[]keyword{substr("city"), substr("tokyo"), substr("new york"), substr("urban"), substr("downtown")}, "city"},
		{[]keyword{substr("beach"), substr("ocean"), word("sea"), substr("coast")}, "beach"},
		{[]keyword{substr("cafe"), substr("coffee"), substr("restaurant")}, "cafe"},
		{[]keyword{substr("studio")}, "studio"},
		{[]keyword{substr("forest"), substr("mountain"), substr("nature"), substr("outdoor"), substr("park")}, "nature"},
		{[]keyword{substr("home"), substr("house"), substr("apartment")}, "home"},
	},
	recommend.CategorySeason: {
		{[]keyword{substr("autumn"), word("fall"), substr("leaves")}, "autumn"},
		{[]keyword{substr("winter"), substr("snow"), word("cold")}, "winter"},
		{[]keyword{substr("spring"), substr("bloom"), substr("flower")}, "spring"},
		{[]keyword{substr("summer"), word("hot"), substr("sunny")}, "summer"},
	},
}

// FallbackParse extracts structured input from free text using the keyword
// cascade alone. Deterministic and never fails; worst case every field is
// left unset.
func FallbackParse(text string) recommend.Input {
	lower := strings.ToLower(text)

	var input recommend.Input
	for category, rules := range fallbackRules {
		for _, r := range rules {
			if matchesAny(lower, r.keywords) {
				setField(&input, category, r.value)
				break
			}
		}
	}

	return input.Sanitize()
}

func matchesAny(text string, keywords []keyword) bool {
	for _, kw := range keywords {
		if kw.wholeWord {
			if containsWord(text, kw.text) {
				return true
			}
		} else if strings.Contains(text, kw.text) {
			return true
		}
	}
	return false
}

func setField(input *recommend.Input, category recommend.Category, value string) {
	switch category {
	case recommend.CategoryLighting:
		input.Lighting = value
	case recommend.CategorySubject:
		input.Subject = value
	case recommend.CategoryMood:
		input.Mood = value
	case recommend.CategoryColorPreference:
		input.ColorPreference = value
	case recommend.CategoryLocation:
		input.Location = value
	case recommend.CategorySeason:
		input.Season = value
	}
}

// containsWord checks if text contains the word (with word boundary awareness)
func containsWord(text, word string) bool {
	// Simple contains for multi-word phrases
	if strings.Contains(word, " ") {
		return strings.Contains(text, word)
	}

	// For single words, check for word boundaries
	// This prevents "old" from matching "oldschool"
	idx := strings.Index(text, word)
	if idx == -1 {
		return false
	}

	// Check character before (if exists)
	if idx > 0 {
		before := text[idx-1]
		if isWordChar(before) {
			// Try to find another occurrence
			return containsWord(text[idx+len(word):], word)
		}
	}

	// Check character after (if exists)
	endIdx := idx + len(word)
	if endIdx < len(text) {
		after := text[endIdx]
		if isWordChar(after) {
			return containsWord(text[idx+len(word):], word)
		}
	}

	return true
}

// isWordChar returns true for alphanumeric characters
func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
