package careguide

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plantpal/plantpal-service/internal/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a care guide repository over the plant_care_guides table.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListGuides(ctx context.Context) ([]Guide, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, plant_name, watering_schedule, sunlight_requirements, soil_type,
		       temperature_range, growing_season, propagation_methods, common_pests,
		       harvest_tips, storage_tips, nutritional_info, medicinal_properties
		FROM plant_care_guides
		ORDER BY plant_name`)
	if err != nil {
		return nil, fmt.Errorf("query care guides: %w", err)
	}
	defer rows.Close()

	guides := make([]Guide, 0)
	for rows.Next() {
		var (
			g                                              Guide
			watering, sunlight, soil, temperature, growing *string
			harvest, storage                               *string
			nutrition                                      []byte
		)
		if err := rows.Scan(&g.ID, &g.PlantName, &watering, &sunlight, &soil,
			&temperature, &growing, &g.PropagationMethods, &g.CommonPests,
			&harvest, &storage, &nutrition, &g.MedicinalProperties); err != nil {
			return nil, fmt.Errorf("scan care guide: %w", err)
		}
		g.WateringSchedule = database.Text(watering)
		g.SunlightRequirements = database.Text(sunlight)
		g.SoilType = database.Text(soil)
		g.TemperatureRange = database.Text(temperature)
		g.GrowingSeason = database.Text(growing)
		g.HarvestTips = database.Text(harvest)
		g.StorageTips = database.Text(storage)
		if len(nutrition) > 0 {
			if err := json.Unmarshal(nutrition, &g.NutritionalInfo); err != nil {
				return nil, fmt.Errorf("decode nutritional info for %s: %w", g.PlantName, err)
			}
		}
		guides = append(guides, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate care guides: %w", err)
	}
	return guides, nil
}
