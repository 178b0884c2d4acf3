package affinity

// Expected schema:
//
//	category_affinities (
//	    user_id           bigint not null,
//	    category          text not null,
//	    affinity_score    double precision not null,
//	    interaction_count bigint not null default 0,
//	    updated_at        timestamptz not null default now(),
//	    primary key (user_id, category)
//	)
//
//	provider_affinities: same shape keyed on (user_id, provider)

const (
	queryGetCategory = `
		SELECT affinity_score, interaction_count
		FROM category_affinities
		WHERE user_id = $1 AND category = $2
	`

	queryUpsertCategory = `
		INSERT INTO category_affinities (user_id, category, affinity_score, interaction_count, updated_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (user_id, category)
		DO UPDATE SET
			affinity_score = $3,
			interaction_count = category_affinities.interaction_count + 1,
			updated_at = NOW()
	`

	queryGetProvider = `
		SELECT affinity_score, interaction_count
		FROM provider_affinities
		WHERE user_id = $1 AND provider = $2
	`

	queryUpsertProvider = `
		INSERT INTO provider_affinities (user_id, provider, affinity_score, interaction_count, updated_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (user_id, provider)
		DO UPDATE SET
			affinity_score = $3,
			interaction_count = provider_affinities.interaction_count + 1,
			updated_at = NOW()
	`

	queryCategoryScores = `
		SELECT category, affinity_score
		FROM category_affinities
		WHERE user_id = $1
	`

	queryProviderScores = `
		SELECT provider, affinity_score
		FROM provider_affinities
		WHERE user_id = $1
	`

	queryTopCategories = `
		SELECT user_id, category, affinity_score, interaction_count, updated_at
		FROM category_affinities
		WHERE user_id = $1
		ORDER BY affinity_score DESC, interaction_count DESC, category ASC
		LIMIT $2
	`

	queryTopProviders = `
		SELECT user_id, provider, affinity_score, interaction_count, updated_at
		FROM provider_affinities
		WHERE user_id = $1
		ORDER BY affinity_score DESC, interaction_count DESC, provider ASC
		LIMIT $2
	`
)
