package importer

import (
	"context"
	"fmt"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
)

// Options controls how existing recipes are handled during import.
// Existing recipes are matched by source URL first, then by name.
type Options struct {
	SkipExisting   bool
	UpdateExisting bool
}

// Result is the outcome of importing one record.
type Result struct {
	Status string `json:"status"` // imported, updated, skipped, failed
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Error  string `json:"error,omitempty"`
}

// Summary aggregates the outcomes of a batch import.
type Summary struct {
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Details  []Result `json:"details"`
}

// Store is the persistence surface the importer needs.
type Store interface {
	FindRecipeID(ctx context.Context, name string, sourceURL *string) (string, error)
	CreateRecipe(ctx context.Context, r *database.Recipe) error
	UpdateRecipe(ctx context.Context, r *database.Recipe) error
}

// Importer writes normalized recipe records into the store.
type Importer struct {
	store Store
}

// New creates an importer over the given store.
func New(store Store) *Importer {
	return &Importer{store: store}
}

// ImportOne normalizes and stores a single record.
func (im *Importer) ImportOne(ctx context.Context, record Record, opts Options) (Result, error) {
	recipe := Normalize(record)

	existingID, err := im.store.FindRecipeID(ctx, recipe.Name, recipe.SourceURL)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check for existing recipe: %w", err)
	}

	if existingID != "" {
		if opts.UpdateExisting {
			recipe.ID = existingID
			if err := im.store.UpdateRecipe(ctx, &recipe); err != nil {
				return Result{}, fmt.Errorf("failed to update recipe %s: %w", recipe.Name, err)
			}
			return Result{Status: "updated", ID: existingID, Name: recipe.Name}, nil
		}
		if opts.SkipExisting {
			return Result{Status: "skipped", ID: existingID, Name: recipe.Name}, nil
		}
	}

	if err := im.store.CreateRecipe(ctx, &recipe); err != nil {
		return Result{}, fmt.Errorf("failed to import recipe %s: %w", recipe.Name, err)
	}

	return Result{Status: "imported", ID: recipe.ID, Name: recipe.Name}, nil
}

// Import runs a batch of records. Individual failures are recorded in the
// summary and do not abort the batch.
func (im *Importer) Import(ctx context.Context, records []Record, opts Options) Summary {
	summary := Summary{Details: []Result{}}

	for _, record := range records {
		result, err := im.ImportOne(ctx, record, opts)
		if err != nil {
			name := record.Name
			if name == "" {
				name = "Unknown"
			}
			summary.Failed++
			summary.Details = append(summary.Details, Result{
				Status: "failed",
				Name:   name,
				Error:  err.Error(),
			})
			continue
		}

		switch result.Status {
		case "imported":
			summary.Imported++
		case "updated":
			summary.Updated++
		case "skipped":
			summary.Skipped++
		}
		summary.Details = append(summary.Details, result)
	}

	return summary
}
