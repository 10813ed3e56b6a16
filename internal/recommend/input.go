package recommend

// Input is the structured, request-scoped shooting intent consumed by the
// engine. Every field is optional; empty means unspecified. Values outside
// a category's enumeration are dropped by Sanitize rather than rejected.
type Input struct {
	Lighting        string `json:"lighting,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Mood            string `json:"mood,omitempty"`
	ColorPreference string `json:"colorPreference,omitempty"`
	Location        string `json:"location,omitempty"`
	Season          string `json:"season,omitempty"`
}

// Get returns the input's value for a category.
func (in Input) Get(category Category) string {
	switch category {
	case CategoryLighting:
		return in.Lighting
	case CategorySubject:
		return in.Subject
	case CategoryMood:
		return in.Mood
	case CategoryColorPreference:
		return in.ColorPreference
	case CategoryLocation:
		return in.Location
	case CategorySeason:
		return in.Season
	}
	return ""
}

func (in *Input) set(category Category, value string) {
	switch category {
	case CategoryLighting:
		in.Lighting = value
	case CategorySubject:
		in.Subject = value
	case CategoryMood:
		in.Mood = value
	case CategoryColorPreference:
		in.ColorPreference = value
	case CategoryLocation:
		in.Location = value
	case CategorySeason:
		in.Season = value
	}
}

// Sanitize returns a copy with every field outside its category's
// enumeration cleared. Unrecognized values are ignored, never an error.
func (in Input) Sanitize() Input {
	var out Input
	for _, category := range Categories {
		if value := in.Get(category); value != "" && ValidValue(category, value) {
			out.set(category, value)
		}
	}
	return out
}

// IsEmpty reports whether no field is set.
func (in Input) IsEmpty() bool {
	for _, category := range Categories {
		if in.Get(category) != "" {
			return false
		}
	}
	return true
}
