package season

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plantpal/plantpal-service/internal/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a catalog repository over the seasonal_plants table.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListPlants(ctx context.Context) ([]Plant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, common_name, scientific_name, description, months_active,
		       plant_type, care_difficulty, fun_fact
		FROM seasonal_plants
		ORDER BY common_name`)
	if err != nil {
		return nil, fmt.Errorf("query seasonal plants: %w", err)
	}
	defer rows.Close()

	plants := make([]Plant, 0)
	for rows.Next() {
		var (
			p                                                  Plant
			scientific, description, kind, difficulty, funFact *string
			months                                             []int32
		)
		if err := rows.Scan(&p.ID, &p.CommonName, &scientific, &description, &months, &kind, &difficulty, &funFact); err != nil {
			return nil, fmt.Errorf("scan seasonal plant: %w", err)
		}
		p.ScientificName = database.Text(scientific)
		p.Description = database.Text(description)
		p.Category = ParseCategory(database.Text(kind))
		p.CareDifficulty = CareDifficulty(database.Text(difficulty))
		p.FunFact = database.Text(funFact)
		p.MonthsActive = make([]int, len(months))
		for i, m := range months {
			p.MonthsActive[i] = int(m)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seasonal plants: %w", err)
	}
	return plants, nil
}
