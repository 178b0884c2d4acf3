package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// creates a new catalog repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the candidate pool for recommendation scoring, excluding the given
// model ids. Featured and recent models come first so a truncated pool still
// contains reasonable candidates.
func (r *Repository) Candidates(ctx context.Context, excludeIDs []int64, limit int) ([]Model, error) {
	if excludeIDs == nil {
		excludeIDs = []int64{}
	}

	rows, err := r.db.Query(ctx, queryCandidates, excludeIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	return scanModels(rows)
}

// returns the featured models list used as the non-personalized fallback.
// Ordering is deterministic so the fallback is stable across requests.
func (r *Repository) Featured(ctx context.Context, limit int) ([]Model, error) {
	rows, err := r.db.Query(ctx, queryFeatured, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query featured models: %w", err)
	}
	defer rows.Close()

	return scanModels(rows)
}

// finds a model by its id
func (r *Repository) GetByID(ctx context.Context, id int64) (*Model, error) {
	row := r.db.QueryRow(ctx, queryGetByID, id)

	model, err := scanModel(row)
	if err != nil {
		return nil, err
	}

	return model, nil
}

// returns the most-interacted models within the given window, e.g. "24 hours"
func (r *Repository) Trending(ctx context.Context, window string, limit int) ([]Model, error) {
	rows, err := r.db.Query(ctx, queryTrending, window, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query trending models: %w", err)
	}
	defer rows.Close()

	var results []Model

	for rows.Next() {
		var m Model
		var recentInteractions int64

		err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Category, &m.Provider,
			&m.Rating, &m.Downloads, &m.Tags, &m.Featured, &m.CreatedAt,
			&recentInteractions,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trending row: %w", err)
		}

		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trending rows: %w", err)
	}

	return results, nil
}

// returns models closest to the given model's embedding by cosine distance
func (r *Repository) Similar(ctx context.Context, modelID int64, limit int) ([]SimilarModel, error) {
	var embedding pgvector.Vector

	err := r.db.QueryRow(ctx, queryGetEmbedding, modelID).Scan(&embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedding for model %d: %w", modelID, err)
	}

	rows, err := r.db.Query(ctx, querySimilarToEmbedding, embedding, modelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query similar models: %w", err)
	}
	defer rows.Close()

	var results []SimilarModel

	for rows.Next() {
		var sm SimilarModel

		err := rows.Scan(
			&sm.ID, &sm.Name, &sm.Description, &sm.Category, &sm.Provider,
			&sm.Rating, &sm.Downloads, &sm.Tags, &sm.Featured, &sm.CreatedAt,
			&sm.Distance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan similar row: %w", err)
		}

		results = append(results, sm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating similar rows: %w", err)
	}

	return results, nil
}

func scanModels(rows pgx.Rows) ([]Model, error) {
	var results []Model

	for rows.Next() {
		var m Model

		err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Category, &m.Provider,
			&m.Rating, &m.Downloads, &m.Tags, &m.Featured, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan model row: %w", err)
		}

		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating model rows: %w", err)
	}

	return results, nil
}

func scanModel(row pgx.Row) (*Model, error) {
	var m Model

	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Category, &m.Provider,
		&m.Rating, &m.Downloads, &m.Tags, &m.Featured, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
