package recommend

import (
	"fmt"

	"codeberg.org/musegrid/server/musegrid/behavior"
	"codeberg.org/musegrid/server/musegrid/catalog"
)

// reasons explains why a model ranked, strongest signal first. Capped at
// MaxReasons; a model with no signal at all still gets one generic line.
func (e *Engine) reasons(model catalog.Model, catAffinity, provAffinity float64, novel bool, profile *behavior.Profile) []string {
	out := make([]string, 0, e.config.MaxReasons)

	add := func(reason string) {
		if len(out) < e.config.MaxReasons {
			out = append(out, reason)
		}
	}

	if catAffinity >= 0.3 {
		add(fmt.Sprintf("Because you like %s models", model.Category))
	}

	if provAffinity >= 0.3 {
		add(fmt.Sprintf("You often use models from %s", model.Provider))
	}

	if model.Featured {
		add("Featured by our curators")
	}

	if model.Rating >= 4.5 {
		add(fmt.Sprintf("Highly rated at %.1f stars", model.Rating))
	}

	if novel && profile.ExplorationScore >= 60 {
		add(fmt.Sprintf("Something new: explore %s", model.Category))
	}

	if len(out) == 0 {
		add("Popular in the community right now")
	}

	return out
}
