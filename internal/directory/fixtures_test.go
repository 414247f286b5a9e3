package directory

import "chefguide/internal/models"

func white(id string, season int, nameKo, nameEn string, restaurants ...models.Restaurant) models.Chef {
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	return models.Chef{
		ID:          id,
		NameKo:      nameKo,
		NameEn:      nameEn,
		Restaurants: restaurants,
		Season:      season,
		Category:    models.CategoryWhite,
	}
}

func black(id string, season int, nickname, realName string, restaurant *models.Restaurant) models.Chef {
	c := models.Chef{
		ID:          id,
		NameKo:      nickname,
		NameEn:      nickname,
		Nickname:    nickname,
		RealNameKo:  realName,
		Restaurants: []models.Restaurant{},
		Season:      season,
		Category:    models.CategoryBlack,
	}

	if realName != "" {
		c.NameKo = realName
	}

	if restaurant != nil {
		c.Restaurants = append(c.Restaurants, *restaurant)
	}

	return c
}

// exampleChefs is the normalized two-chef scenario.
func exampleChefs() []models.Chef {
	return []models.Chef{
		white("c1", 1, "김치", "", models.Restaurant{NameKo: "김치집", Address: "Seoul Jongno"}),
		black("c2", 1, "Napoleon", "", &models.Restaurant{NameKo: "나폴레옹식당", Address: "Seoul Gangnam", Michelin: "1-star"}),
	}
}

// roster spans two seasons and both categories.
func roster() []models.Chef {
	star := models.Restaurant{NameKo: "별당", NameEn: "Star House", Michelin: "2-star"}

	chefs := []models.Chef{
		white("s1w1", 1, "안성재", "Anh Sung-jae", star, models.Restaurant{NameKo: "모수", NameEn: "Mosu"}, models.Restaurant{NameKo: "세번째"}),
		white("s1w2", 1, "최현석", "Choi Hyun-seok", models.Restaurant{NameKo: "쵸이닷", NameEn: "Choi Dot"}),
		black("s1b1", 1, "Napoleon", "", &models.Restaurant{NameKo: "나폴레옹", NameEn: "Napoleon Bistro"}),
		black("s1b2", 1, "Totoro", "김도훈", nil),
		white("s2w1", 2, "여경래", "Yeo Kyung-rae"),
		black("s2b1", 2, "Iron Wok", "", &models.Restaurant{NameKo: "철판", NameEn: "Teppan", Michelin: "Bib Gourmand"}),
	}

	chefs[0].Michelin = "2-star"
	chefs[0].Rank = "Runner-up"
	chefs[2].Rank = "Winner"
	chefs[3].Note = "Closed in 2025"

	return chefs
}

func ids(chefs []models.Chef) []string {
	out := make([]string, 0, len(chefs))
	for _, c := range chefs {
		out = append(out, c.ID)
	}

	return out
}

func directoryOf(chefs []models.Chef) *models.Directory {
	return &models.Directory{
		Chefs:     chefs,
		Stats:     Aggregate(chefs),
		Breakdown: AggregateBy(chefs),
	}
}
