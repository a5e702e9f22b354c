package recipe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plantpal/plantpal-service/internal/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a recipe repository over the recipes and species tables.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListRecipes(ctx context.Context) ([]Recipe, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id::text, r.title, r.description, r.ingredients, r.steps, r.chef_tip,
		       r.prep_time_minutes, r.species_id::text, r.created_at, s.name
		FROM recipes r
		LEFT JOIN species s ON s.id = r.species_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]Recipe, 0)
	for rows.Next() {
		var (
			rec                                      Recipe
			description, chefTip, speciesID, species *string
			prep                                     *int32
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &description, &rec.Ingredients, &rec.Steps, &chefTip,
			&prep, &speciesID, &rec.CreatedAt, &species); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		rec.Description = database.Text(description)
		rec.ChefTip = database.Text(chefTip)
		rec.SpeciesID = database.Text(speciesID)
		if prep != nil {
			rec.PrepTimeMinutes = int(*prep)
		}
		if species != nil {
			rec.Species = &SpeciesRef{ID: rec.SpeciesID, Name: *species}
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

func (r *postgresRepository) CountRecipes(ctx context.Context) (int, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return int(n), nil
}
