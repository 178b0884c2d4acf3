package interactions

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new interaction repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// appends one interaction to the log
func (r *Repository) Insert(ctx context.Context, interaction Interaction) error {
	_, err := r.db.Exec(
		ctx,
		queryInsert,
		interaction.ID,
		interaction.UserID,
		interaction.ModelID,
		string(interaction.Type),
		interaction.EngagementLevel,
		interaction.SessionDuration,
		interaction.DeviceType,
		interaction.ReferralSource,
		interaction.OccurredAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert interaction: %w", err)
	}

	return nil
}

// appends a batch of interactions in one round trip, used by the flusher
func (r *Repository) InsertBatch(ctx context.Context, batch []Interaction) error {
	if len(batch) == 0 {
		return nil
	}

	b := &pgx.Batch{}

	for _, interaction := range batch {
		b.Queue(
			queryInsert,
			interaction.ID,
			interaction.UserID,
			interaction.ModelID,
			string(interaction.Type),
			interaction.EngagementLevel,
			interaction.SessionDuration,
			interaction.DeviceType,
			interaction.ReferralSource,
			interaction.OccurredAt,
		)
	}

	results := r.db.SendBatch(ctx, b)
	defer results.Close() //nolint:errcheck

	for range batch {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert interaction batch: %w", err)
		}
	}

	return nil
}

// returns the user's most recent interactions, newest first
func (r *Repository) RecentByUser(ctx context.Context, userID int64, limit int) ([]Interaction, error) {
	rows, err := r.db.Query(ctx, queryRecentByUser, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent interactions: %w", err)
	}
	defer rows.Close()

	var results []Interaction

	for rows.Next() {
		var i Interaction
		var kind string

		err := rows.Scan(
			&i.ID, &i.UserID, &i.ModelID, &kind, &i.EngagementLevel,
			&i.SessionDuration, &i.DeviceType, &i.ReferralSource, &i.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interaction row: %w", err)
		}

		i.Type = InteractionType(kind)
		results = append(results, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interaction rows: %w", err)
	}

	return results, nil
}

// returns per-type interaction counts for the user
func (r *Repository) CountsByType(ctx context.Context, userID int64) ([]TypeCount, error) {
	rows, err := r.db.Query(ctx, queryCountsByType, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query interaction counts: %w", err)
	}
	defer rows.Close()

	var results []TypeCount

	for rows.Next() {
		var tc TypeCount
		var kind string

		if err := rows.Scan(&kind, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}

		tc.Type = InteractionType(kind)
		results = append(results, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating count rows: %w", err)
	}

	return results, nil
}
