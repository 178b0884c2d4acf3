package recommend

// diversify re-ranks a relevance-sorted list so no more than MaxRunLength
// consecutive entries share a category or provider. Deferred entries keep
// their relative order and are placed at the next position where the run
// constraint allows; anything still unplaceable is appended as-is. Each
// displaced entry's DiversityFactor records how far diversity moved it.
func (e *Engine) diversify(recs []Recommendation) []Recommendation {
	if len(recs) <= e.config.MaxRunLength {
		return recs
	}

	out := make([]Recommendation, 0, len(recs))
	pending := make([]Recommendation, 0)

	catRun, provRun := 0, 0
	lastCat, lastProv := "", ""

	take := func(rec Recommendation) {
		if rec.Model.Category == lastCat {
			catRun++
		} else {
			lastCat = rec.Model.Category
			catRun = 1
		}

		if rec.Model.Provider == lastProv {
			provRun++
		} else {
			lastProv = rec.Model.Provider
			provRun = 1
		}

		out = append(out, rec)
	}

	fits := func(rec Recommendation) bool {
		if rec.Model.Category == lastCat && catRun >= e.config.MaxRunLength {
			return false
		}

		if rec.Model.Provider == lastProv && provRun >= e.config.MaxRunLength {
			return false
		}

		return true
	}

	for _, rec := range recs {
		// deferred entries get first chance at every slot
		placed := true
		for placed {
			placed = false

			for i, held := range pending {
				if fits(held) {
					take(held)
					pending = append(pending[:i], pending[i+1:]...)
					placed = true

					break
				}
			}
		}

		if fits(rec) {
			take(rec)
		} else {
			pending = append(pending, rec)
		}
	}

	// whatever is left cannot satisfy the constraint, append in rank order
	for len(pending) > 0 {
		placed := false

		for i, held := range pending {
			if fits(held) {
				take(held)
				pending = append(pending[:i], pending[i+1:]...)
				placed = true

				break
			}
		}

		if !placed {
			take(pending[0])
			pending = pending[1:]
		}
	}

	markDisplacement(recs, out)

	return out
}

// records how far each entry moved relative to its pure-relevance position
func markDisplacement(before, after []Recommendation) {
	rank := make(map[int64]int, len(before))
	for i, rec := range before {
		rank[rec.Model.ID] = i
	}

	for i := range after {
		moved := i - rank[after[i].Model.ID]
		if moved < 0 {
			moved = -moved
		}

		if moved > 0 {
			after[i].Metadata.DiversityFactor = clamp01(1 - float64(moved)/float64(len(after)))
		}
	}
}
