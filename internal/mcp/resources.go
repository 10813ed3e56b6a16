package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "fujirecipes://summary",
		Name:        "Recipe Corpus Summary",
		Description: "Corpus size and tag vocabulary overview",
		MimeType:    "text/plain",
	},
	{
		URI:         "fujirecipes://tags",
		Name:        "Tag Vocabulary",
		Description: "All tags recipes are matched against, grouped by category",
		MimeType:    "text/plain",
	},
	{
		URI:         "fujirecipes://recipes",
		Name:        "Recipe List",
		Description: "All recipes with film simulation and tags",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
