package sighting

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plantpal/plantpal-service/internal/database"
	"github.com/plantpal/plantpal-service/internal/season"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a sighting repository over the reports and species tables.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListReports(ctx context.Context) ([]Report, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id::text, r.user_id::text, r.species_id::text, r.latitude, r.longitude, r.notes, r.created_at,
		       s.name, s.plant_type
		FROM reports r
		LEFT JOIN species s ON s.id = r.species_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := make([]Report, 0)
	for rows.Next() {
		var (
			rep               Report
			notes, name, kind *string
		)
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.SpeciesID, &rep.Latitude, &rep.Longitude, &notes, &rep.CreatedAt, &name, &kind); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		rep.Notes = database.Text(notes)
		if name != nil {
			rep.Species = &Species{ID: rep.SpeciesID, Name: *name, Category: season.ParseCategory(database.Text(kind))}
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

func (r *postgresRepository) CreateReport(ctx context.Context, rep Report) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reports (id, user_id, species_id, latitude, longitude, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rep.ID, rep.UserID, rep.SpeciesID, rep.Latitude, rep.Longitude, database.NullText(rep.Notes), rep.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetSpecies(ctx context.Context, id string) (*Species, error) {
	return r.querySpecies(ctx, `SELECT id::text, name, plant_type FROM species WHERE id::text = $1`, id)
}

func (r *postgresRepository) FirstInvasiveSpecies(ctx context.Context) (*Species, error) {
	return r.querySpecies(ctx, `SELECT id::text, name, plant_type FROM species WHERE plant_type = $1 ORDER BY name LIMIT 1`,
		string(season.CategoryInvasive))
}

func (r *postgresRepository) CountReports(ctx context.Context, userID string) (int, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reports WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return int(n), nil
}

func (r *postgresRepository) CountSpecies(ctx context.Context) (int, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM species`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count species: %w", err)
	}
	return int(n), nil
}

func (r *postgresRepository) querySpecies(ctx context.Context, query string, args ...any) (*Species, error) {
	var (
		sp   Species
		kind *string
	)
	err := r.pool.QueryRow(ctx, query, args...).Scan(&sp.ID, &sp.Name, &kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get species: %w", err)
	}
	sp.Category = season.ParseCategory(database.Text(kind))
	return &sp, nil
}
