package normalizer

import "chefguide/internal/models"

// exampleDataset is the two-chef scenario: one white chef with a restaurant and one
// black chef with no real name and an awarded restaurant.
func exampleDataset() *models.Dataset {
	return &models.Dataset{
		Seasons: []models.Season{
			{
				ID: 1,
				White: []models.WhiteRecord{
					{
						ID:     "c1",
						NameKo: "김치",
						Restaurants: []models.Restaurant{
							{NameKo: "김치집", Address: "Seoul Jongno"},
						},
					},
				},
				Black: []models.BlackRecord{
					{
						ID:       "c2",
						Nickname: "Napoleon",
						Restaurant: &models.Restaurant{
							NameKo:   "나폴레옹식당",
							Address:  "Seoul Gangnam",
							Michelin: "1-star",
						},
					},
				},
			},
		},
	}
}

// twoSeasonDataset has two seasons with mixed roster sizes.
func twoSeasonDataset() *models.Dataset {
	return &models.Dataset{
		Seasons: []models.Season{
			{
				ID: 1,
				White: []models.WhiteRecord{
					{ID: "s1w1", NameKo: "가", NameEn: "Ga"},
					{ID: "s1w2", NameKo: "나", NameEn: "Na", Restaurants: []models.Restaurant{{NameKo: "A"}, {NameKo: "B"}}},
				},
				Black: []models.BlackRecord{
					{ID: "s1b1", Nickname: "Alpha", RealNameKo: "다"},
				},
			},
			{
				ID: 2,
				Black: []models.BlackRecord{
					{ID: "s2b1", Nickname: "Beta", Restaurant: &models.Restaurant{NameKo: "C"}},
					{ID: "s2b2", Nickname: "Gamma", Note: "closed"},
				},
				White: []models.WhiteRecord{
					{ID: "s2w1", NameKo: "라", NameEn: "Ra", Rank: "Winner"},
				},
			},
		},
	}
}
