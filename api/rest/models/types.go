package models

import (
	"context"

	"codeberg.org/musegrid/server/musegrid/catalog"
)

// Catalog is the model browsing surface
type Catalog interface {
	Featured(ctx context.Context, limit int) ([]catalog.Model, error)
	Trending(ctx context.Context, window string, limit int) ([]catalog.Model, error)
	GetByID(ctx context.Context, id int64) (*catalog.Model, error)
	Similar(ctx context.Context, modelID int64, limit int) ([]catalog.SimilarModel, error)
}

// ModelsListResponse wraps a list of models
type ModelsListResponse struct {
	Models []catalog.Model `json:"models"`
}

// SimilarListResponse wraps a similarity-ordered list of models
type SimilarListResponse struct {
	Models []catalog.SimilarModel `json:"models"`
}

// trending windows accepted on the wire, mapped to SQL intervals
var trendingWindows = map[string]string{
	"1h":  "1 hour",
	"24h": "24 hours",
	"7d":  "7 days",
	"30d": "30 days",
}
