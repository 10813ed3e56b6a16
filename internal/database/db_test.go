package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fujirecipes-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if db == nil {
		t.Fatal("expected non-nil database")
	}

	// Verify tables exist
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='recipes'").Scan(&count)
	if err != nil {
		t.Fatalf("failed to query tables: %v", err)
	}
	if count != 1 {
		t.Errorf("expected recipes table to exist")
	}
}

func TestSeededVocabulary(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tags, err := db.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) == 0 {
		t.Fatal("expected seeded tag vocabulary")
	}

	byName := make(map[string]string)
	for _, tag := range tags {
		byName[tag.Name] = tag.Category
	}
	checks := map[string]string{
		"golden_hour": "lighting",
		"street":      "subject",
		"moody":       "mood",
		"teal_orange": "color",
		"beach":       "location",
		"autumn":      "season",
	}
	for name, category := range checks {
		if byName[name] != category {
			t.Errorf("tag %s: expected category %s, got %s", name, category, byName[name])
		}
	}

	cameras, err := db.ListCameras(ctx)
	if err != nil {
		t.Fatalf("ListCameras failed: %v", err)
	}
	if len(cameras) == 0 {
		t.Error("expected seeded camera list")
	}
}

func TestRecipeCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	author := "Test Author"
	sourceURL := "https://example.com/kodachrome"
	recipe := &Recipe{
		Name:           "Kodachrome 64",
		Description:    "Warm slide film look",
		FilmSimulation: "Classic Chrome",
		Settings: Settings{
			WhiteBalance:          "Daylight",
			WhiteBalanceShiftRed:  2,
			WhiteBalanceShiftBlue: -3,
			DynamicRange:          DR200,
			Highlight:             1,
			Shadow:                1,
			Color:                 2,
			GrainEffect:           EffectWeak,
			GrainSize:             GrainSmall,
			ColorChromeEffect:     EffectStrong,
			ExposureCompensation:  "+2/3",
		},
		SampleImages: []string{"https://example.com/sample1.jpg"},
		Source:       "import",
		SourceURL:    &sourceURL,
		Author:       &author,
		Tags:         []string{"warm", "vintage", "daylight", "not_in_vocabulary"},
	}

	err := db.CreateRecipe(ctx, recipe)
	if err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}
	if recipe.ID == "" {
		t.Error("expected ID to be set after create")
	}

	fetched, err := db.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetRecipeByID failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected recipe to be found")
	}
	if fetched.Name != "Kodachrome 64" {
		t.Errorf("expected Name=Kodachrome 64, got %s", fetched.Name)
	}
	if fetched.Settings.WhiteBalanceShiftBlue != -3 {
		t.Errorf("expected WhiteBalanceShiftBlue=-3, got %d", fetched.Settings.WhiteBalanceShiftBlue)
	}
	if len(fetched.SampleImages) != 1 {
		t.Errorf("expected 1 sample image, got %d", len(fetched.SampleImages))
	}
	if fetched.Author == nil || *fetched.Author != "Test Author" {
		t.Errorf("expected Author=Test Author, got %v", fetched.Author)
	}

	// Unknown tag names are skipped, known ones associated
	if len(fetched.Tags) != 3 {
		t.Errorf("expected 3 tags, got %d: %v", len(fetched.Tags), fetched.Tags)
	}
	if !fetched.HasTag("warm") || !fetched.HasTag("vintage") || !fetched.HasTag("daylight") {
		t.Errorf("missing expected tags: %v", fetched.Tags)
	}
	if fetched.HasTag("not_in_vocabulary") {
		t.Error("unknown tag should not be associated")
	}

	// Every recipe is compatible with every known camera
	if len(fetched.Cameras) == 0 {
		t.Error("expected camera associations after create")
	}

	// Update
	recipe.Description = "Updated description"
	recipe.Tags = []string{"cool", "street"}
	err = db.UpdateRecipe(ctx, recipe)
	if err != nil {
		t.Fatalf("UpdateRecipe failed: %v", err)
	}

	fetched, _ = db.GetRecipeByID(ctx, recipe.ID)
	if fetched.Description != "Updated description" {
		t.Errorf("expected updated description, got %s", fetched.Description)
	}
	if len(fetched.Tags) != 2 || !fetched.HasTag("cool") || !fetched.HasTag("street") {
		t.Errorf("expected tags replaced on update, got %v", fetched.Tags)
	}
}

func TestGetRecipeByName(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	recipe := &Recipe{
		Name:           "Portra 400",
		FilmSimulation: "Classic Chrome",
		Source:         "manual",
	}
	db.CreateRecipe(ctx, recipe)

	// Case-insensitive lookup
	found, err := db.GetRecipeByName(ctx, "portra 400")
	if err != nil {
		t.Fatalf("GetRecipeByName failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected to find recipe")
	}
	if found.Name != "Portra 400" {
		t.Errorf("expected Name=Portra 400, got %s", found.Name)
	}

	notFound, _ := db.GetRecipeByName(ctx, "Ektachrome")
	if notFound != nil {
		t.Error("expected nil for non-existent recipe")
	}
}

func TestListRecipesOrdering(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	names := []string{"Velvia Vivid", "Acros Classic", "Moody Blues"}
	for _, name := range names {
		recipe := &Recipe{Name: name, FilmSimulation: "Provia", Source: "manual"}
		if err := db.CreateRecipe(ctx, recipe); err != nil {
			t.Fatalf("CreateRecipe(%s) failed: %v", name, err)
		}
	}

	recipes, err := db.ListRecipes(ctx)
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if len(recipes) != 3 {
		t.Fatalf("expected 3 recipes, got %d", len(recipes))
	}

	want := []string{"Acros Classic", "Moody Blues", "Velvia Vivid"}
	for i, name := range want {
		if recipes[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, recipes[i].Name)
		}
	}
}

func TestFindRecipeID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	sourceURL := "https://example.com/recipe"
	recipe := &Recipe{
		Name:           "Classic Negative Street",
		FilmSimulation: "Classic Neg",
		Source:         "import",
		SourceURL:      &sourceURL,
	}
	db.CreateRecipe(ctx, recipe)

	// Match by source URL
	id, err := db.FindRecipeID(ctx, "Different Name", &sourceURL)
	if err != nil {
		t.Fatalf("FindRecipeID failed: %v", err)
	}
	if id != recipe.ID {
		t.Errorf("expected match by source URL, got %q", id)
	}

	// Match by name when URL unknown
	otherURL := "https://example.com/other"
	id, err = db.FindRecipeID(ctx, "Classic Negative Street", &otherURL)
	if err != nil {
		t.Fatalf("FindRecipeID failed: %v", err)
	}
	if id != recipe.ID {
		t.Errorf("expected match by name, got %q", id)
	}

	// No match
	id, err = db.FindRecipeID(ctx, "Unknown", nil)
	if err != nil {
		t.Fatalf("FindRecipeID failed: %v", err)
	}
	if id != "" {
		t.Errorf("expected empty id for no match, got %q", id)
	}
}

func TestCountRecipes(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	count, err := db.CountRecipes(ctx)
	if err != nil {
		t.Fatalf("CountRecipes failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty corpus, got %d", count)
	}

	db.CreateRecipe(ctx, &Recipe{Name: "One", FilmSimulation: "Provia", Source: "manual"})
	db.CreateRecipe(ctx, &Recipe{Name: "Two", FilmSimulation: "Provia", Source: "manual"})

	count, _ = db.CountRecipes(ctx)
	if count != 2 {
		t.Errorf("expected 2 recipes, got %d", count)
	}
}
