package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/filmrecipes/fujirecipes-mcp/internal/recommend"
)

func (s *Server) registerHandlers() {
	s.handlers["recommend_recipes"] = s.handleRecommendRecipes
	s.handlers["recommend_from_text"] = s.handleRecommendFromText
	s.handlers["extract_parameters"] = s.handleExtractParameters
	s.handlers["list_recipes"] = s.handleListRecipes
	s.handlers["get_recipe"] = s.handleGetRecipe
	s.handlers["list_tags"] = s.handleListTags
}

func (s *Server) handleRecommendRecipes(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var input recommend.Input
	if params != nil {
		if err := json.Unmarshal(params, &input); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	recs, err := s.engine.Recommend(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("recommendation failed: %w", err)
	}

	return recs, nil
}

type textParams struct {
	Text string `json:"text"`
}

type textRecommendResult struct {
	ParsedInput     recommend.Input            `json:"parsedInput"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

func (s *Server) handleRecommendFromText(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p textParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	input := s.extractor.Extract(ctx, p.Text)

	recs, err := s.engine.Recommend(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("recommendation failed: %w", err)
	}

	return textRecommendResult{
		ParsedInput:     input,
		Recommendations: recs,
	}, nil
}

func (s *Server) handleExtractParameters(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p textParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	return s.extractor.Extract(ctx, p.Text), nil
}

func (s *Server) handleListRecipes(ctx context.Context, params json.RawMessage) (interface{}, error) {
	recipes, err := s.db.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return recipes, nil
}

type getRecipeParams struct {
	Identifier string `json:"identifier"`
}

func (s *Server) handleGetRecipe(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getRecipeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.Identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}

	// Try to find by name first
	recipe, err := s.db.GetRecipeByName(ctx, p.Identifier)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if recipe == nil {
		// Try by ID
		recipe, err = s.db.GetRecipeByID(ctx, p.Identifier)
		if err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	if recipe == nil {
		return nil, fmt.Errorf("recipe not found: %s", p.Identifier)
	}

	return recipe, nil
}

func (s *Server) handleListTags(ctx context.Context, params json.RawMessage) (interface{}, error) {
	tags, err := s.db.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return tags, nil
}

// Resource handlers

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "fujirecipes://summary":
		return s.getResourceSummary(ctx)
	case "fujirecipes://tags":
		return s.getResourceTags(ctx)
	case "fujirecipes://recipes":
		return s.getResourceRecipes(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceSummary(ctx context.Context) (string, error) {
	count, err := s.db.CountRecipes(ctx)
	if err != nil {
		return "", err
	}

	tags, err := s.db.ListTags(ctx)
	if err != nil {
		return "", err
	}

	cameras, err := s.db.ListCameras(ctx)
	if err != nil {
		return "", err
	}

	categories := make(map[string]int)
	for _, t := range tags {
		categories[t.Category]++
	}

	summary := fmt.Sprintf(`Recipe Corpus Summary
=====================
Recipes: %d
Tags:    %d across %d categories
Cameras: %d
`, count, len(tags), len(categories), len(cameras))

	return summary, nil
}

func (s *Server) getResourceTags(ctx context.Context) (string, error) {
	tags, err := s.db.ListTags(ctx)
	if err != nil {
		return "", err
	}

	result := "Tag Vocabulary\n==============\n\n"

	// ListTags orders by category, so grouping is a matter of breaks
	var current string
	for _, t := range tags {
		if t.Category != current {
			if current != "" {
				result += "\n"
			}
			current = t.Category
			result += fmt.Sprintf("%s:\n", current)
		}
		result += fmt.Sprintf("  - %s\n", t.Name)
	}

	return result, nil
}

func (s *Server) getResourceRecipes(ctx context.Context) (string, error) {
	recipes, err := s.db.ListRecipes(ctx)
	if err != nil {
		return "", err
	}

	result := "Recipe List\n===========\n\n"

	if len(recipes) == 0 {
		result += "No recipes yet. Run 'fujirecipes import' to load some.\n"
		return result, nil
	}

	for _, r := range recipes {
		result += fmt.Sprintf("- %s | %s | %s\n",
			r.Name, r.FilmSimulation, strings.Join(r.Tags, ", "))
	}

	return result, nil
}
