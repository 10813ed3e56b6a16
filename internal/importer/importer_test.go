package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/filmrecipes/fujirecipes-mcp/internal/database"
)

type fakeStore struct {
	recipes   map[string]*database.Recipe // by name
	createErr error
	created   int
	updated   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{recipes: make(map[string]*database.Recipe)}
}

func (s *fakeStore) FindRecipeID(ctx context.Context, name string, sourceURL *string) (string, error) {
	if sourceURL != nil {
		for _, r := range s.recipes {
			if r.SourceURL != nil && *r.SourceURL == *sourceURL {
				return r.ID, nil
			}
		}
	}
	if r, ok := s.recipes[name]; ok {
		return r.ID, nil
	}
	return "", nil
}

func (s *fakeStore) CreateRecipe(ctx context.Context, r *database.Recipe) error {
	if s.createErr != nil {
		return s.createErr
	}
	r.ID = r.Name + "-id"
	s.recipes[r.Name] = r
	s.created++
	return nil
}

func (s *fakeStore) UpdateRecipe(ctx context.Context, r *database.Recipe) error {
	s.recipes[r.Name] = r
	s.updated++
	return nil
}

func TestImportNewRecipes(t *testing.T) {
	store := newFakeStore()
	im := New(store)

	records := []Record{
		{Name: "Kodachrome 64", FilmSimulation: "Classic Chrome"},
		{Name: "Velvia Dream", FilmSimulation: "Velvia"},
	}

	summary := im.Import(context.Background(), records, Options{SkipExisting: true})

	if summary.Imported != 2 {
		t.Errorf("expected 2 imported, got %d", summary.Imported)
	}
	if summary.Failed != 0 || summary.Skipped != 0 || summary.Updated != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if len(summary.Details) != 2 {
		t.Errorf("expected 2 details, got %d", len(summary.Details))
	}

	// Imported recipes carry generated descriptions and tags
	stored := store.recipes["Kodachrome 64"]
	if stored == nil {
		t.Fatal("expected recipe in store")
	}
	if stored.Description == "" || len(stored.Tags) == 0 {
		t.Error("expected normalization to fill description and tags")
	}
}

func TestImportSkipsExisting(t *testing.T) {
	store := newFakeStore()
	im := New(store)

	record := Record{Name: "Kodachrome 64"}
	im.Import(context.Background(), []Record{record}, Options{SkipExisting: true})

	summary := im.Import(context.Background(), []Record{record}, Options{SkipExisting: true})
	if summary.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %+v", summary)
	}
	if store.created != 1 {
		t.Errorf("expected 1 create, got %d", store.created)
	}
}

func TestImportUpdatesExisting(t *testing.T) {
	store := newFakeStore()
	im := New(store)

	sourceURL := "https://example.com/recipe"
	record := Record{Name: "Original Name", SourceURL: sourceURL}
	im.Import(context.Background(), []Record{record}, Options{SkipExisting: true})

	// Same source URL, renamed: matched by URL and updated in place
	renamed := Record{Name: "New Name", SourceURL: sourceURL}
	summary := im.Import(context.Background(), []Record{renamed}, Options{UpdateExisting: true})

	if summary.Updated != 1 {
		t.Errorf("expected 1 updated, got %+v", summary)
	}
	if store.updated != 1 {
		t.Errorf("expected 1 update call, got %d", store.updated)
	}
	if summary.Details[0].ID != "Original Name-id" {
		t.Errorf("expected update to reuse existing id, got %q", summary.Details[0].ID)
	}
}

func TestImportRecordsFailuresWithoutAborting(t *testing.T) {
	store := newFakeStore()
	im := New(store)

	store.createErr = errors.New("disk full")
	summary := im.Import(context.Background(), []Record{
		{Name: "Will Fail"},
		{Name: ""},
	}, Options{})

	if summary.Failed != 2 {
		t.Errorf("expected 2 failed, got %+v", summary)
	}
	if summary.Details[0].Name != "Will Fail" {
		t.Errorf("unexpected detail name: %q", summary.Details[0].Name)
	}
	if summary.Details[0].Error == "" {
		t.Error("expected error message in detail")
	}
}
