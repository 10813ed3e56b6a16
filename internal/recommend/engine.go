package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
)

// Corpus provides the full tagged recipe corpus for scoring. The store's
// ListRecipes returns recipes ordered by (name, id), which doubles as the
// deterministic tie-break order for equal scores.
type Corpus interface {
	ListRecipes(ctx context.Context) ([]database.Recipe, error)
}

// Recommendation is one scored, explained result.
type Recommendation struct {
	Recipe      database.Recipe `json:"recipe"`
	Score       int             `json:"score"`
	MatchedTags []string        `json:"matchedTags"`
	Explanation string          `json:"explanation"`
}

// Engine scores recipes against structured input. It is stateless and safe
// for concurrent use.
type Engine struct {
	corpus     Corpus
	maxResults int
}

// NewEngine creates an engine over the given corpus. maxResults values
// below 1 fall back to 3.
func NewEngine(corpus Corpus, maxResults int) *Engine {
	if maxResults < 1 {
		maxResults = 3
	}
	return &Engine{corpus: corpus, maxResults: maxResults}
}

// Recommend scores every recipe in the corpus against the input and returns
// the top results by descending score. Input fields outside their
// enumerations are dropped. An input with no usable fields scores every
// recipe 0 and returns the first results in corpus order.
func (e *Engine) Recommend(ctx context.Context, input Input) ([]Recommendation, error) {
	input = input.Sanitize()

	recipes, err := e.corpus.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe corpus: %w", err)
	}
	if len(recipes) == 0 {
		return []Recommendation{}, nil
	}

	targetWeights := buildTargetWeights(input)

	var totalWeight float64
	for _, w := range targetWeights {
		totalWeight += w
	}

	type scored struct {
		recipe  database.Recipe
		raw     float64
		matched []string
	}

	results := make([]scored, 0, len(recipes))
	for _, recipe := range recipes {
		var raw float64
		var matched []string
		for tag, weight := range targetWeights {
			if recipe.HasTag(tag) {
				raw += weight
				matched = append(matched, tag)
			}
		}
		// Matched tags in a stable order; map iteration is not
		sort.Strings(matched)
		results = append(results, scored{recipe: recipe, raw: raw, matched: matched})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].raw > results[j].raw
	})

	if len(results) > e.maxResults {
		results = results[:e.maxResults]
	}

	recommendations := make([]Recommendation, 0, len(results))
	for _, s := range results {
		// Normalize against the query's total available weight and round
		// to an integer only here, never during accumulation
		var score int
		if totalWeight > 0 {
			score = int(math.Round(100 * s.raw / totalWeight))
		}
		matched := s.matched
		if matched == nil {
			matched = []string{}
		}
		recommendations = append(recommendations, Recommendation{
			Recipe:      s.recipe,
			Score:       score,
			MatchedTags: matched,
			Explanation: Explain(s.recipe, matched, input),
		})
	}

	return recommendations, nil
}

// buildTargetWeights expands each set input field to its tags and
// accumulates the category weight onto every tag. Distinct categories
// contributing the same tag sum their weights.
func buildTargetWeights(input Input) map[string]float64 {
	weights := make(map[string]float64)
	for _, category := range Categories {
		value := input.Get(category)
		if value == "" {
			continue
		}
		for _, tag := range TagsFor(category, value) {
			weights[tag] += Weight(category)
		}
	}
	return weights
}
