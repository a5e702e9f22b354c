package journal

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

// NewPostgresRepository creates a journal repository over the plant_journal table.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const entryColumns = `id::text, user_id::text, plant_name, common_name, scientific_name, image_url,
	notes, location_name, identified_date, is_favorite, confidence_score, plant_type`

func scanEntry(row pgx.Row) (Entry, error) {
	var (
		e                                           Entry
		common, scientific, image, notes, loc, kind *string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.PlantName, &common, &scientific, &image,
		&notes, &loc, &e.IdentifiedDate, &e.Favorite, &e.ConfidenceScore, &kind)
	if err != nil {
		return Entry{}, err
	}
	e.CommonName = database.Text(common)
	e.ScientificName = database.Text(scientific)
	e.ImageURL = database.Text(image)
	e.Notes = database.Text(notes)
	e.LocationName = database.Text(loc)
	e.Category = season.ParseCategory(database.Text(kind))
	return e, nil
}

func (r *postgresRepository) ListEntries(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM plant_journal
		WHERE user_id = $1
		ORDER BY identified_date DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}

func (r *postgresRepository) GetEntry(ctx context.Context, id string) (*Entry, error) {
	e, err := scanEntry(r.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM plant_journal WHERE id::text = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	return &e, nil
}

func (r *postgresRepository) CreateEntry(ctx context.Context, e Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO plant_journal (id, user_id, plant_name, common_name, scientific_name, image_url,
			notes, location_name, identified_date, is_favorite, confidence_score, plant_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.UserID, e.PlantName, database.NullText(e.CommonName), database.NullText(e.ScientificName),
		database.NullText(e.ImageURL), database.NullText(e.Notes), database.NullText(e.LocationName),
		e.IdentifiedDate, e.Favorite, e.ConfidenceScore, database.NullText(string(e.Category)))
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

func (r *postgresRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE plant_journal SET is_favorite = $2 WHERE id::text = $1`, id, favorite)
	if err != nil {
		return fmt.Errorf("update journal favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteEntry(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM plant_journal WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
