package advisor

import (
	"testing"

	"github.com/Veraticus/wastewise/internal/catalog"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_PlasticExample(t *testing.T) {
	profile := model.MaterialProfile{
		Category:       model.CategoryRecyclable,
		Material:       "Plastic (PET)",
		EstimatedPrice: model.PricePtr(50),
		Actions: []model.Action{
			{Kind: model.ActionReuse, Title: "Planter", Priority: 1},
			{Kind: model.ActionReuse, Title: "Storage", Priority: 2},
			{Kind: model.ActionSell, Title: "Sell", Priority: 3},
		},
	}

	ranked := Rank(profile)
	require.Len(t, ranked, 3)

	var priorities []int
	for _, r := range ranked {
		priorities = append(priorities, r.Priority)
	}
	assert.Equal(t, []int{1, 2, 3}, priorities)
	assert.True(t, ranked[0].Best)
	assert.False(t, ranked[1].Best)
	assert.False(t, ranked[2].Best)
	assert.Equal(t, "Planter", ranked.Best().Title)
}

func TestRank_StableTiesAndGaps(t *testing.T) {
	profile := model.MaterialProfile{
		Material: "Mixed",
		Actions: []model.Action{
			{Kind: model.ActionDispose, Title: "D", Priority: 10},
			{Kind: model.ActionReuse, Title: "A", Priority: 3},
			{Kind: model.ActionCompost, Title: "B", Priority: 3},
			{Kind: model.ActionReuse, Title: "C", Priority: 7},
		},
	}

	ranked := Rank(profile)

	want := []string{"A", "B", "C", "D"}
	var got []string
	for _, r := range ranked {
		got = append(got, r.Title)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank() order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 4, ranked[3].Rank)

	// Input must not be reordered.
	assert.Equal(t, "D", profile.Actions[0].Title)
}

func TestRank_CatalogProperties(t *testing.T) {
	for _, p := range catalog.Default().Profiles() {
		t.Run(p.Material, func(t *testing.T) {
			ranked := Rank(p)

			// Permutation of the input actions.
			assert.ElementsMatch(t, p.Actions, ranked.Actions())

			// Non-decreasing priority; best is minimal.
			for i := range ranked {
				assert.LessOrEqual(t, ranked[0].Priority, ranked[i].Priority)
				if i > 0 {
					assert.LessOrEqual(t, ranked[i-1].Priority, ranked[i].Priority)
				}
			}

			// Idempotent.
			again := Rank(model.MaterialProfile{Material: p.Material, Actions: ranked.Actions()})
			if diff := cmp.Diff(ranked, again); diff != "" {
				t.Errorf("Rank(Rank(p)) differs (-first +second):\n%s", diff)
			}

			// Deterministic.
			assert.Equal(t, ranked, Rank(p))
		})
	}
}

func TestRank_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() {
		Rank(model.MaterialProfile{Material: "Nothing"})
	})
}
