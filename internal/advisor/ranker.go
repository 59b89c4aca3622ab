package advisor

import (
	"sort"

	"github.com/Veraticus/wastewise/internal/model"
)

// Rank orders a profile's actions by ascending priority. Ties keep catalog
// order and the first entry is flagged as the best option. The profile is not
// modified. An empty action set violates the catalog invariant and panics.
func Rank(profile model.MaterialProfile) model.RankedActions {
	if len(profile.Actions) == 0 {
		panic("advisor: rank called on profile " + profile.Material + " with no actions")
	}

	actions := make([]model.Action, len(profile.Actions))
	copy(actions, profile.Actions)

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority < actions[j].Priority
	})

	ranked := make(model.RankedActions, len(actions))
	for i, a := range actions {
		ranked[i] = model.RankedAction{
			Action: a,
			Rank:   i + 1,
			Best:   i == 0,
		}
	}
	return ranked
}
