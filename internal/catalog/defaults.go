package catalog

import "github.com/Veraticus/wastewise/internal/model"

// Default returns the built-in catalog.
func Default() *Catalog {
	return MustNew(defaultProfiles())
}

func defaultProfiles() []model.MaterialProfile {
	return []model.MaterialProfile{
		{
			Category:   model.CategoryOrganic,
			Material:   "Vegetable Waste",
			Confidence: 96,
			Actions: []model.Action{
				{Kind: model.ActionCompost, Title: "Use as Compost", Priority: 1,
					Description: "Add to your compost bin or garden soil. Vegetable peels decompose in 2-4 weeks and enrich soil with nutrients."},
				{Kind: model.ActionReuse, Title: "Feed Your Plants", Priority: 2,
					Description: "Soak vegetable scraps in water for 24-48 hours to make nutrient-rich plant fertilizer."},
				{Kind: model.ActionReuse, Title: "Make Vegetable Broth", Priority: 3,
					Description: "Collect onion peels, carrot tops and celery ends in a freezer bag, then boil for a zero-waste stock."},
			},
		},
		{
			Category:       model.CategoryRecyclable,
			Material:       "Plastic (PET)",
			Confidence:     92,
			EstimatedPrice: model.PricePtr(50),
			Actions: []model.Action{
				{Kind: model.ActionReuse, Title: "Reuse as Planter", Priority: 1,
					Description: "Cut the bottle in half and use it as a mini planter for herbs. Poke holes at the bottom for drainage."},
				{Kind: model.ActionReuse, Title: "DIY Storage Container", Priority: 2,
					Description: "Clean it and use it to store small items or craft supplies."},
				{Kind: model.ActionSell, Title: "Sell on Marketplace", Priority: 3,
					Description: "PET bottles are in demand at recycling centers. Collect in bulk for better prices."},
			},
		},
		{
			Category:       model.CategoryRecyclable,
			Material:       "Cardboard",
			Confidence:     89,
			EstimatedPrice: model.PricePtr(80),
			Actions: []model.Action{
				{Kind: model.ActionCompost, Title: "Add to Compost", Priority: 1,
					Description: "Shred cardboard and add it to compost as brown material to balance nitrogen-rich scraps."},
				{Kind: model.ActionReuse, Title: "Use for Gardening", Priority: 2,
					Description: "Lay flat sheets in garden beds as a weed barrier and cover with mulch."},
				{Kind: model.ActionSell, Title: "Sell in Bulk", Priority: 3,
					Description: "Cardboard fetches 15-20 per kg. Flatten and collect for better value."},
			},
		},
		{
			Category:   model.CategoryOrganic,
			Material:   "Fruit Peels",
			Confidence: 94,
			Actions: []model.Action{
				{Kind: model.ActionCompost, Title: "Compost It", Priority: 1,
					Description: "Fruit peels add nitrogen to compost and break down in 1-3 weeks."},
				{Kind: model.ActionReuse, Title: "Natural Cleaner", Priority: 2,
					Description: "Citrus peels soaked in vinegar for 2 weeks make an all-purpose household cleaner."},
				{Kind: model.ActionReuse, Title: "Banana Peel Fertilizer", Priority: 3,
					Description: "Chop banana peels and bury them near rose plants to release potassium."},
			},
		},
		{
			Category:       model.CategoryHazardous,
			Material:       "Battery (Li-ion)",
			Confidence:     88,
			Actions: []model.Action{
				{Kind: model.ActionDispose, Title: "Drop at E-Waste Center", Priority: 1,
					Description: "Batteries contain toxic chemicals. Never throw them in regular trash; find the nearest e-waste collection point."},
			},
		},
	}
}
