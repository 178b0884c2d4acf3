package catalog

// Expected schema:
//
//	models (
//	    id          bigserial primary key,
//	    name        text not null,
//	    description text not null default '',
//	    category    text not null,
//	    provider    text not null,
//	    rating      double precision not null default 0,
//	    downloads   bigint not null default 0,
//	    tags        text[] not null default '{}',
//	    featured    boolean not null default false,
//	    embedding   vector(768),
//	    created_at  timestamptz not null default now()
//	)

const (
	modelColumns = `id, name, description, category, provider, rating, downloads, tags, featured, created_at`

	queryCandidates = `
		SELECT ` + modelColumns + `
		FROM models
		WHERE NOT (id = ANY($1))
		ORDER BY featured DESC, created_at DESC, id ASC
		LIMIT $2
	`

	queryFeatured = `
		SELECT ` + modelColumns + `
		FROM models
		WHERE featured = TRUE
		ORDER BY rating DESC, downloads DESC, id ASC
		LIMIT $1
	`

	queryGetByID = `
		SELECT ` + modelColumns + `
		FROM models
		WHERE id = $1
	`

	modelColumnsQualified = `m.id, m.name, m.description, m.category, m.provider, m.rating, m.downloads, m.tags, m.featured, m.created_at`

	queryTrending = `
		SELECT ` + modelColumnsQualified + `, COUNT(i.id) AS recent_interactions
		FROM models m
		JOIN interactions i ON i.model_id = m.id
		WHERE i.occurred_at > NOW() - $1::interval
		GROUP BY m.id
		ORDER BY recent_interactions DESC, m.rating DESC, m.id ASC
		LIMIT $2
	`

	queryGetEmbedding = `
		SELECT embedding
		FROM models
		WHERE id = $1 AND embedding IS NOT NULL
	`

	querySimilarToEmbedding = `
		SELECT ` + modelColumns + `, embedding <=> $1 AS distance
		FROM models
		WHERE id <> $2 AND embedding IS NOT NULL
		ORDER BY distance ASC, id ASC
		LIMIT $3
	`
)
