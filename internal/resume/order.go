package resume

import (
	"github.com/resumehub/resume-builder/internal/types"
)

// EffectiveSections resolves the visible section order for rendering.
// hidden always wins: any section named there is filtered out of the order,
// whether the order was supplied by the caller or fell back to defaultOrder.
// Unknown section names in order are dropped rather than rejected.
func EffectiveSections(order, hidden, defaultOrder []string) []string {
	if len(order) == 0 {
		order = defaultOrder
	}

	hiddenSet := make(map[string]bool, len(hidden))
	for _, h := range hidden {
		hiddenSet[h] = true
	}

	known := make(map[string]bool, len(types.KnownSections))
	for _, s := range types.KnownSections {
		known[s] = true
	}

	out := make([]string, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, s := range order {
		if hiddenSet[s] || !known[s] || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
