package recommendations

import (
	"context"

	"codeberg.org/musegrid/server/musegrid/recommend"
)

// Provider answers recommendation queries; failures degrade internally so
// the response always carries a list
type Provider interface {
	Personalized(ctx context.Context, query recommend.Query) recommend.Response
}
