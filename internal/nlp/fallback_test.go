package nlp

import (
	"testing"

	"github.com/filmrecipes/fujirecipes-mcp/internal/recommend"
)

func TestFallbackParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want recommend.Input
	}{
		{
			name: "moody night street",
			text: "Moody night street photography",
			want: recommend.Input{
				Lighting: "night",
				Subject:  "street",
				Mood:     "moody",
			},
		},
		{
			name: "bright sunny autumn landscape",
			text: "Bright sunny landscape in autumn mountains",
			want: recommend.Input{
				Lighting:        "bright_sunlight",
				Subject:         "landscape",
				Mood:            "natural",
				ColorPreference: "vibrant",
				Location:        "nature",
				Season:          "autumn",
			},
		},
		{
			name: "golden hour beach portraits",
			text: "Shooting portraits at sunset on the beach",
			want: recommend.Input{
				Lighting: "golden_hour",
				Subject:  "portrait",
				Location: "beach",
			},
		},
		{
			name: "black and white",
			text: "black and white architecture shots",
			want: recommend.Input{
				Subject:         "architecture",
				ColorPreference: "bw",
			},
		},
		{
			name: "indoor cafe",
			text: "cozy cafe inside on a rainy day",
			want: recommend.Input{
				Lighting: "indoor",
				Location: "cafe",
			},
		},
		{
			name: "no matches",
			text: "xyzzy quux",
			want: recommend.Input{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackParse(tt.text)
			if got != tt.want {
				t.Errorf("FallbackParse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFallbackWholeWordMinimalPair(t *testing.T) {
	// "old" as a word triggers vintage; inside "oldschool" it must not
	got := FallbackParse("old camera look")
	if got.Mood != "vintage" {
		t.Errorf("expected mood=vintage for whole word 'old', got %q", got.Mood)
	}

	got = FallbackParse("oldschool camera look")
	if got.Mood != "" {
		t.Errorf("expected no mood for 'oldschool', got %q", got.Mood)
	}
}

func TestFallbackRuleOrder(t *testing.T) {
	// "dark" fires the night rule before moody gets a chance at it
	got := FallbackParse("dark alley")
	if got.Lighting != "night" {
		t.Errorf("expected lighting=night, got %q", got.Lighting)
	}
	// mood also fires: moody via whole-word "dark"
	if got.Mood != "moody" {
		t.Errorf("expected mood=moody, got %q", got.Mood)
	}

	// cinematic precedes vintage within mood
	got = FallbackParse("cinematic vintage look")
	if got.Mood != "cinematic" {
		t.Errorf("expected mood=cinematic, got %q", got.Mood)
	}
}

func TestFallbackSeasonPrecedence(t *testing.T) {
	// "sunny" appears in both the summer rule and bright_sunlight; autumn
	// is checked first so an explicit autumn mention wins
	got := FallbackParse("sunny autumn walk")
	if got.Season != "autumn" {
		t.Errorf("expected season=autumn, got %q", got.Season)
	}

	got = FallbackParse("hot sunny day")
	if got.Season != "summer" {
		t.Errorf("expected season=summer, got %q", got.Season)
	}

	// "sea" must not match inside "season"
	got = FallbackParse("rainy season trip")
	if got.Location == "beach" {
		t.Error("'season' must not trigger the beach rule")
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text     string
		word     string
		expected bool
	}{
		{"an old camera", "old", true},
		{"oldschool", "old", false},
		{"household items", "old", false},
		{"cold day", "cold", true},
		{"scolded child", "cold", false},
		{"fall colors", "fall", true},
		{"waterfall hike", "fall", false},
		{"old", "old", true},
		{"old.", "old", true},
		{"threshold, then old", "old", true},
		{"blue hour shots", "blue hour", true},
	}

	for _, tt := range tests {
		result := containsWord(tt.text, tt.word)
		if result != tt.expected {
			t.Errorf("containsWord(%q, %q) = %v, want %v", tt.text, tt.word, result, tt.expected)
		}
	}
}
