package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func enumProperty(description string, values []string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        values,
		"description": description,
	}
}

var structuredInputProperties = map[string]interface{}{
	"lighting": enumProperty("Lighting conditions",
		[]string{"bright_sunlight", "golden_hour", "blue_hour", "overcast", "indoor", "night", "mixed"}),
	"subject": enumProperty("Main subject",
		[]string{"portrait", "street", "landscape", "architecture", "nature", "food", "travel", "event"}),
	"mood": enumProperty("Desired mood or aesthetic",
		[]string{"cinematic", "vintage", "modern", "dreamy", "moody", "natural", "dramatic", "minimal"}),
	"colorPreference": enumProperty("Color rendering preference",
		[]string{"warm", "cool", "neutral", "vibrant", "muted", "bw", "teal_orange"}),
	"location": enumProperty("Shooting location",
		[]string{"city", "nature", "beach", "cafe", "studio", "home"}),
	"season": enumProperty("Season",
		[]string{"summer", "autumn", "winter", "spring"}),
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "recommend_recipes",
		Description: "Recommend Fujifilm film simulation recipes from structured shooting conditions. Returns up to 3 scored recipes with explanations.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": structuredInputProperties,
		},
	},
	{
		Name:        "recommend_from_text",
		Description: "Recommend recipes from a free-text description of the shooting scenario. Returns the parsed parameters alongside the recommendations.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description, e.g. 'moody night street photography in Tokyo'",
				},
			},
			"required": []string{"text"},
		},
	},
	{
		Name:        "extract_parameters",
		Description: "Parse a free-text shooting description into structured parameters without running a recommendation.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description to parse",
				},
			},
			"required": []string{"text"},
		},
	},
	{
		Name:        "list_recipes",
		Description: "List all recipes in the corpus with their tags, ordered by name.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "get_recipe",
		Description: "Get full details of a recipe including settings, tags, and compatible cameras.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"identifier": map[string]interface{}{
					"type":        "string",
					"description": "Recipe name (case-insensitive) or recipe ID",
				},
			},
			"required": []string{"identifier"},
		},
	},
	{
		Name:        "list_tags",
		Description: "List the tag vocabulary recipes are matched against, grouped by category.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
