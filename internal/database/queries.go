package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const recipeColumns = `r.id, r.name, r.description, r.film_simulation,
	       r.white_balance, r.white_balance_shift_red, r.white_balance_shift_blue,
	       r.dynamic_range, r.highlight, r.shadow, r.color, r.sharpness,
	       r.noise_reduction, r.grain_effect, r.grain_size, r.color_chrome_effect,
	       r.color_chrome_fx_blue, r.clarity, r.exposure_compensation,
	       r.sample_images, r.source, r.source_url, r.author, r.created_at, r.updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRecipe scans one recipe row (with a GROUP_CONCAT tag column) into a Recipe.
func scanRecipe(row rowScanner) (*Recipe, error) {
	r := &Recipe{}
	var sourceURL, author, tagList sql.NullString
	var sampleImages string

	err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.FilmSimulation,
		&r.Settings.WhiteBalance, &r.Settings.WhiteBalanceShiftRed, &r.Settings.WhiteBalanceShiftBlue,
		&r.Settings.DynamicRange, &r.Settings.Highlight, &r.Settings.Shadow, &r.Settings.Color,
		&r.Settings.Sharpness, &r.Settings.NoiseReduction, &r.Settings.GrainEffect,
		&r.Settings.GrainSize, &r.Settings.ColorChromeEffect, &r.Settings.ColorChromeFXBlue,
		&r.Settings.Clarity, &r.Settings.ExposureCompensation,
		&sampleImages, &r.Source, &sourceURL, &author, &r.CreatedAt, &r.UpdatedAt,
		&tagList,
	)
	if err != nil {
		return nil, err
	}

	r.SourceURL = StringPtr(sourceURL)
	r.Author = StringPtr(author)

	r.SampleImages = []string{}
	if sampleImages != "" {
		// Malformed JSON leaves the slice empty rather than failing the query
		_ = json.Unmarshal([]byte(sampleImages), &r.SampleImages)
	}

	r.Tags = []string{}
	if tagList.Valid && tagList.String != "" {
		r.Tags = strings.Split(tagList.String, ",")
	}

	return r, nil
}

// ListRecipes retrieves the full corpus, each recipe with its tag names.
// Ordering is (name, id) so results are deterministic across stores.
func (db *DB) ListRecipes(ctx context.Context) ([]Recipe, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s, GROUP_CONCAT(DISTINCT t.name) AS tags
		FROM recipes r
		LEFT JOIN recipe_tags rt ON r.id = rt.recipe_id
		LEFT JOIN tags t ON rt.tag_id = t.id
		GROUP BY r.id
		ORDER BY r.name, r.id
	`, recipeColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}

	return recipes, rows.Err()
}

// GetRecipeByID retrieves a recipe by ID, including compatible cameras.
func (db *DB) GetRecipeByID(ctx context.Context, id string) (*Recipe, error) {
	return db.getRecipe(ctx, "r.id = ?", id)
}

// GetRecipeByName retrieves a recipe by exact name (case-insensitive).
func (db *DB) GetRecipeByName(ctx context.Context, name string) (*Recipe, error) {
	return db.getRecipe(ctx, "LOWER(r.name) = LOWER(?)", name)
}

func (db *DB) getRecipe(ctx context.Context, where string, arg interface{}) (*Recipe, error) {
	row := db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s, GROUP_CONCAT(DISTINCT t.name) AS tags
		FROM recipes r
		LEFT JOIN recipe_tags rt ON r.id = rt.recipe_id
		LEFT JOIN tags t ON rt.tag_id = t.id
		WHERE %s
		GROUP BY r.id
	`, recipeColumns, where), arg)

	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// sqlite returns a single all-NULL row for an aggregate over zero rows;
	// Scan fails on the NOT NULL columns in that case, handled above. A found
	// recipe still needs its camera list.
	cameras, err := db.recipeCameras(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	r.Cameras = cameras

	return r, nil
}

func (db *DB) recipeCameras(ctx context.Context, recipeID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT c.model
		FROM cameras c
		JOIN recipe_cameras rc ON c.id = rc.camera_id
		WHERE rc.recipe_id = ?
		ORDER BY c.model
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	return models, rows.Err()
}

// CreateRecipe inserts a new recipe, associates its tags, and marks it
// compatible with every known camera.
func (db *DB) CreateRecipe(ctx context.Context, r *Recipe) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()

	sampleImages, err := json.Marshal(r.SampleImages)
	if err != nil {
		return fmt.Errorf("failed to encode sample images: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO recipes (
			id, name, description, film_simulation, white_balance,
			white_balance_shift_red, white_balance_shift_blue, dynamic_range,
			highlight, shadow, color, sharpness, noise_reduction,
			grain_effect, grain_size, color_chrome_effect, color_chrome_fx_blue,
			clarity, exposure_compensation, sample_images, source, source_url,
			author, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.Name, r.Description, r.FilmSimulation, r.Settings.WhiteBalance,
		r.Settings.WhiteBalanceShiftRed, r.Settings.WhiteBalanceShiftBlue, r.Settings.DynamicRange,
		r.Settings.Highlight, r.Settings.Shadow, r.Settings.Color, r.Settings.Sharpness,
		r.Settings.NoiseReduction, r.Settings.GrainEffect, r.Settings.GrainSize,
		r.Settings.ColorChromeEffect, r.Settings.ColorChromeFXBlue, r.Settings.Clarity,
		r.Settings.ExposureCompensation, string(sampleImages), r.Source,
		NullString(r.SourceURL), NullString(r.Author), r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := db.SetRecipeTags(ctx, r.ID, r.Tags); err != nil {
		return err
	}

	return db.associateAllCameras(ctx, r.ID)
}

// UpdateRecipe updates an existing recipe and replaces its tag associations.
func (db *DB) UpdateRecipe(ctx context.Context, r *Recipe) error {
	r.UpdatedAt = time.Now()

	sampleImages, err := json.Marshal(r.SampleImages)
	if err != nil {
		return fmt.Errorf("failed to encode sample images: %w", err)
	}

	result, err := db.ExecContext(ctx, `
		UPDATE recipes SET
			name = ?, description = ?, film_simulation = ?, white_balance = ?,
			white_balance_shift_red = ?, white_balance_shift_blue = ?, dynamic_range = ?,
			highlight = ?, shadow = ?, color = ?, sharpness = ?, noise_reduction = ?,
			grain_effect = ?, grain_size = ?, color_chrome_effect = ?, color_chrome_fx_blue = ?,
			clarity = ?, exposure_compensation = ?, sample_images = ?, source = ?,
			source_url = ?, author = ?, updated_at = ?
		WHERE id = ?
	`,
		r.Name, r.Description, r.FilmSimulation, r.Settings.WhiteBalance,
		r.Settings.WhiteBalanceShiftRed, r.Settings.WhiteBalanceShiftBlue, r.Settings.DynamicRange,
		r.Settings.Highlight, r.Settings.Shadow, r.Settings.Color, r.Settings.Sharpness,
		r.Settings.NoiseReduction, r.Settings.GrainEffect, r.Settings.GrainSize,
		r.Settings.ColorChromeEffect, r.Settings.ColorChromeFXBlue, r.Settings.Clarity,
		r.Settings.ExposureCompensation, string(sampleImages), r.Source,
		NullString(r.SourceURL), NullString(r.Author), r.UpdatedAt, r.ID,
	)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("recipe not found: %s", r.ID)
	}

	return db.SetRecipeTags(ctx, r.ID, r.Tags)
}

// FindRecipeID locates an existing recipe by source URL first, then by name.
// Returns the empty string when no match exists.
func (db *DB) FindRecipeID(ctx context.Context, name string, sourceURL *string) (string, error) {
	var id string

	if sourceURL != nil && *sourceURL != "" {
		err := db.QueryRowContext(ctx,
			`SELECT id FROM recipes WHERE source_url = ?`, *sourceURL).Scan(&id)
		if err == nil {
			return id, nil
		}
		if err != sql.ErrNoRows {
			return "", err
		}
	}

	err := db.QueryRowContext(ctx,
		`SELECT id FROM recipes WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return id, nil
}

// SetRecipeTags replaces a recipe's tag associations. Tag names not present
// in the vocabulary are silently skipped.
func (db *DB) SetRecipeTags(ctx context.Context, recipeID string, tags []string) error {
	if _, err := db.ExecContext(ctx,
		`DELETE FROM recipe_tags WHERE recipe_id = ?`, recipeID); err != nil {
		return err
	}

	for _, name := range tags {
		_, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO recipe_tags (recipe_id, tag_id, weight)
			SELECT ?, id, 1.0 FROM tags WHERE name = ?
		`, recipeID, name)
		if err != nil {
			return err
		}
	}

	return nil
}

// associateAllCameras marks a recipe compatible with every known camera.
// Camera compatibility is not currently differentiated per recipe.
func (db *DB) associateAllCameras(ctx context.Context, recipeID string) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR IGNORE INTO recipe_cameras (recipe_id, camera_id)
		SELECT ?, id FROM cameras
	`, recipeID)
	return err
}

// ListTags retrieves the full tag vocabulary ordered by category then name.
func (db *DB) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, category FROM tags ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Category); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

// ListCameras retrieves all known camera models.
func (db *DB) ListCameras(ctx context.Context) ([]Camera, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, model FROM cameras ORDER BY model`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cameras []Camera
	for rows.Next() {
		var c Camera
		if err := rows.Scan(&c.ID, &c.Model); err != nil {
			return nil, err
		}
		cameras = append(cameras, c)
	}

	return cameras, rows.Err()
}

// CountRecipes returns the corpus size.
func (db *DB) CountRecipes(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count)
	return count, err
}
