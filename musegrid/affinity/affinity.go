package affinity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new affinity repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the user's current category score and count; found=false for a
// user/category pair with no history yet
func (r *Repository) GetCategory(ctx context.Context, userID int64, category string) (score float64, count int64, found bool, err error) {
	err = r.db.QueryRow(ctx, queryGetCategory, userID, category).Scan(&score, &count)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, false, nil
	}

	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to get category affinity: %w", err)
	}

	return score, count, true, nil
}

// writes the new category score; creates the row on first interaction,
// otherwise bumps interaction_count by exactly one
func (r *Repository) UpsertCategory(ctx context.Context, userID int64, category string, score float64) error {
	if _, err := r.db.Exec(ctx, queryUpsertCategory, userID, category, score); err != nil {
		return fmt.Errorf("failed to upsert category affinity: %w", err)
	}

	return nil
}

// returns the user's current provider score and count; found=false for a
// user/provider pair with no history yet
func (r *Repository) GetProvider(ctx context.Context, userID int64, provider string) (score float64, count int64, found bool, err error) {
	err = r.db.QueryRow(ctx, queryGetProvider, userID, provider).Scan(&score, &count)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, false, nil
	}

	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to get provider affinity: %w", err)
	}

	return score, count, true, nil
}

// writes the new provider score; creates the row on first interaction,
// otherwise bumps interaction_count by exactly one
func (r *Repository) UpsertProvider(ctx context.Context, userID int64, provider string, score float64) error {
	if _, err := r.db.Exec(ctx, queryUpsertProvider, userID, provider, score); err != nil {
		return fmt.Errorf("failed to upsert provider affinity: %w", err)
	}

	return nil
}

// returns all category scores for the user as a map
func (r *Repository) CategoryScores(ctx context.Context, userID int64) (map[string]float64, error) {
	return r.scoreMap(ctx, queryCategoryScores, userID)
}

// returns all provider scores for the user as a map
func (r *Repository) ProviderScores(ctx context.Context, userID int64) (map[string]float64, error) {
	return r.scoreMap(ctx, queryProviderScores, userID)
}

func (r *Repository) scoreMap(ctx context.Context, query string, userID int64) (map[string]float64, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query affinity scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]float64)

	for rows.Next() {
		var key string
		var score float64

		if err := rows.Scan(&key, &score); err != nil {
			return nil, fmt.Errorf("failed to scan affinity row: %w", err)
		}

		scores[key] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating affinity rows: %w", err)
	}

	return scores, nil
}

// returns the user's strongest category affinities for insight responses
func (r *Repository) TopCategories(ctx context.Context, userID int64, limit int) ([]CategoryAffinity, error) {
	rows, err := r.db.Query(ctx, queryTopCategories, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top categories: %w", err)
	}
	defer rows.Close()

	var results []CategoryAffinity

	for rows.Next() {
		var a CategoryAffinity

		if err := rows.Scan(&a.UserID, &a.Category, &a.Score, &a.InteractionCount, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category affinity: %w", err)
		}

		results = append(results, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category affinities: %w", err)
	}

	return results, nil
}

// returns the user's strongest provider affinities for insight responses
func (r *Repository) TopProviders(ctx context.Context, userID int64, limit int) ([]ProviderAffinity, error) {
	rows, err := r.db.Query(ctx, queryTopProviders, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top providers: %w", err)
	}
	defer rows.Close()

	var results []ProviderAffinity

	for rows.Next() {
		var a ProviderAffinity

		if err := rows.Scan(&a.UserID, &a.Provider, &a.Score, &a.InteractionCount, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan provider affinity: %w", err)
		}

		results = append(results, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provider affinities: %w", err)
	}

	return results, nil
}
