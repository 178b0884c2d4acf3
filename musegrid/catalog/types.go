package catalog

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles read-only model catalog queries. The catalog is owned by the
// ingestion subsystem; the recommendation core only reads it.
type Repository struct {
	db *pgxpool.Pool
}

// represents an AI image model in the catalog
type Model struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Provider    string    `json:"provider"`
	Rating      float64   `json:"rating"`    // 0.0 - 5.0
	Downloads   int64     `json:"downloads"` // lifetime generation/download count
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// pairs a model with its embedding distance for similarity results
type SimilarModel struct {
	Model
	Distance float64 `json:"distance"`
}
