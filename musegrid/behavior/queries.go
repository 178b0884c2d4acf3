package behavior

// engagement_level >= 6 marks an interaction as a positive engagement when
// deriving the user's quality threshold

const (
	queryStats = `
		SELECT
			COUNT(*),
			COUNT(DISTINCT m.category),
			COUNT(DISTINCT m.provider),
			COALESCE(AVG(i.engagement_level), 0),
			COALESCE(AVG(m.rating) FILTER (WHERE i.engagement_level >= 6), 0)
		FROM interactions i
		JOIN models m ON m.id = i.model_id
		WHERE i.user_id = $1
	`

	queryDominantDevice = `
		SELECT device_type
		FROM interactions
		WHERE user_id = $1 AND device_type <> ''
		GROUP BY device_type
		ORDER BY COUNT(*) DESC, device_type ASC
		LIMIT 1
	`
)
