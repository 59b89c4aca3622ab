package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() MaterialProfile {
	return MaterialProfile{
		Category:       CategoryRecyclable,
		Material:       "Plastic (PET)",
		Confidence:     92,
		EstimatedPrice: PricePtr(50),
		Actions: []Action{
			{Kind: ActionReuse, Title: "Reuse as Planter", Priority: 1},
			{Kind: ActionReuse, Title: "DIY Storage Container", Priority: 2},
			{Kind: ActionSell, Title: "Sell on Marketplace", Priority: 3},
		},
	}
}

func TestMaterialProfile_Validate(t *testing.T) {
	tests := []struct {
		mutate  func(p *MaterialProfile)
		name    string
		errMsg  string
		wantErr bool
	}{
		{
			name:   "valid profile",
			mutate: func(_ *MaterialProfile) {},
		},
		{
			name:    "unknown category",
			mutate:  func(p *MaterialProfile) { p.Category = "Radioactive" },
			wantErr: true,
			errMsg:  `invalid material profile: unknown category "Radioactive"`,
		},
		{
			name:    "missing material",
			mutate:  func(p *MaterialProfile) { p.Material = " " },
			wantErr: true,
			errMsg:  "invalid material profile: material name is required",
		},
		{
			name:    "confidence too high",
			mutate:  func(p *MaterialProfile) { p.Confidence = 100.5 },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): confidence must be between 0 and 100, got 100.5",
		},
		{
			name:    "NaN confidence",
			mutate:  func(p *MaterialProfile) { p.Confidence = math.NaN() },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): confidence must be between 0 and 100, got NaN",
		},
		{
			name:    "no actions",
			mutate:  func(p *MaterialProfile) { p.Actions = nil },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): at least one action is required",
		},
		{
			name:    "zero priority",
			mutate:  func(p *MaterialProfile) { p.Actions[0].Priority = 0 },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): action 0: priority must be positive, got 0",
		},
		{
			name:    "negative price",
			mutate:  func(p *MaterialProfile) { p.EstimatedPrice = PricePtr(-1) },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): estimated price must be positive, got -1.00",
		},
		{
			name:    "NaN price",
			mutate:  func(p *MaterialProfile) { p.EstimatedPrice = PricePtr(math.NaN()) },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): estimated price must be positive, got NaN",
		},
		{
			name:    "infinite price",
			mutate:  func(p *MaterialProfile) { p.EstimatedPrice = PricePtr(math.Inf(1)) },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): estimated price must be positive, got +Inf",
		},
		{
			name:    "sell without price",
			mutate:  func(p *MaterialProfile) { p.EstimatedPrice = nil },
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): sell action requires an estimated price",
		},
		{
			name: "price without sell",
			mutate: func(p *MaterialProfile) {
				p.Actions = p.Actions[:2]
			},
			wantErr: true,
			errMsg:  "invalid material profile: Plastic (PET): estimated price set without a sell action",
		},
		{
			name: "edge case - confidence 0",
			mutate: func(p *MaterialProfile) {
				p.Confidence = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidProfile)
			assert.Equal(t, tt.errMsg, err.Error())
		})
	}
}

func TestMaterialProfile_Clone(t *testing.T) {
	p := validProfile()
	c := p.Clone()

	c.Actions[0].Title = "changed"
	*c.EstimatedPrice = 99

	assert.Equal(t, "Reuse as Planter", p.Actions[0].Title)
	price, ok := p.Price()
	assert.True(t, ok)
	assert.InDelta(t, 50.0, price, 0.001)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "Organic", want: CategoryOrganic},
		{in: "recyclable", want: CategoryRecyclable},
		{in: "Non-Recyclable", want: CategoryNonRecyclable},
		{in: "NonRecyclable", want: CategoryNonRecyclable},
		{in: "non_recyclable", want: CategoryNonRecyclable},
		{in: "glass", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActionKind(t *testing.T) {
	k, err := ParseActionKind(" Sell ")
	require.NoError(t, err)
	assert.Equal(t, ActionSell, k)

	_, err = ParseActionKind("burn")
	assert.Error(t, err)
}

func TestRankedActions_Sell(t *testing.T) {
	ranked := RankedActions{
		{Action: Action{Kind: ActionCompost, Title: "Compost", Priority: 1}, Rank: 1, Best: true},
		{Action: Action{Kind: ActionSell, Title: "Sell", Priority: 2}, Rank: 2},
	}

	sell, ok := ranked.Sell()
	require.True(t, ok)
	assert.Equal(t, "Sell", sell.Title)
	assert.Equal(t, "Compost", ranked.Best().Title)
	assert.Len(t, ranked.Actions(), 2)

	var empty RankedActions
	assert.Nil(t, empty.Best())
}

func TestListing_Validate(t *testing.T) {
	l := Listing{Material: "Cardboard", Category: CategoryRecyclable, WeightKg: 5, PricePerKg: 80, Location: "MG Road, Bangalore"}
	require.NoError(t, l.Validate())
	assert.InDelta(t, 400.0, l.Total(), 0.001)

	l.WeightKg = 0
	assert.EqualError(t, l.Validate(), "weight must be positive, got 0.00")
}
