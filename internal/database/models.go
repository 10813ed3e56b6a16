package database

import (
	"database/sql"
	"time"
)

// GrainEffect / ColorChromeEffect strength values
const (
	EffectOff    = "Off"
	EffectWeak   = "Weak"
	EffectStrong = "Strong"
)

// Grain size values (meaningful only when grain effect is not Off)
const (
	GrainSmall = "Small"
	GrainLarge = "Large"
)

// Dynamic range tiers
const (
	DR100 = "DR100"
	DR200 = "DR200"
	DR400 = "DR400"
)

// Settings holds the in-camera settings of a recipe.
type Settings struct {
	WhiteBalance          string `json:"whiteBalance"`
	WhiteBalanceShiftRed  int    `json:"whiteBalanceShiftRed"`
	WhiteBalanceShiftBlue int    `json:"whiteBalanceShiftBlue"`
	DynamicRange          string `json:"dynamicRange"`
	Highlight             int    `json:"highlight"`
	Shadow                int    `json:"shadow"`
	Color                 int    `json:"color"`
	Sharpness             int    `json:"sharpness"`
	NoiseReduction        int    `json:"noiseReduction"`
	GrainEffect           string `json:"grainEffect"`
	GrainSize             string `json:"grainSize"`
	ColorChromeEffect     string `json:"colorChromeEffect"`
	ColorChromeFXBlue     string `json:"colorChromeFxBlue"`
	Clarity               int    `json:"clarity"`
	ExposureCompensation  string `json:"exposureCompensation"`
}

// Recipe is a named bundle of Fujifilm film-simulation settings.
// Tags are assigned programmatically at import time and are not user-editable.
type Recipe struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	FilmSimulation string    `json:"filmSimulation"`
	Settings       Settings  `json:"settings"`
	SampleImages   []string  `json:"sampleImages"`
	Source         string    `json:"source"`
	SourceURL      *string   `json:"sourceUrl,omitempty"`
	Author         *string   `json:"author,omitempty"`
	Tags           []string  `json:"tags"`
	Cameras        []string  `json:"compatibleCameras,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(name string) bool {
	for _, t := range r.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// Tag is one entry of the fixed vocabulary recipes are matched against.
// The category exists for grouping and display only.
type Tag struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Camera is a body model a recipe is compatible with.
type Camera struct {
	ID    int    `json:"id"`
	Model string `json:"model"`
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
