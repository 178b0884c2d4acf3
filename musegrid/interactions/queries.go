package interactions

// Expected schema:
//
//	interactions (
//	    id               uuid primary key,
//	    user_id          bigint not null,
//	    model_id         bigint not null,
//	    interaction_type text not null,
//	    engagement_level int not null,
//	    session_duration int not null default 0,
//	    device_type      text not null default '',
//	    referral_source  text not null default 'direct',
//	    occurred_at      timestamptz not null
//	)

const (
	queryInsert = `
		INSERT INTO interactions (id, user_id, model_id, interaction_type, engagement_level, session_duration, device_type, referral_source, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	queryRecentByUser = `
		SELECT id, user_id, model_id, interaction_type, engagement_level, session_duration, device_type, referral_source, occurred_at
		FROM interactions
		WHERE user_id = $1
		ORDER BY occurred_at DESC, id ASC
		LIMIT $2
	`

	queryCountsByType = `
		SELECT interaction_type, COUNT(*)
		FROM interactions
		WHERE user_id = $1
		GROUP BY interaction_type
		ORDER BY interaction_type
	`
)
