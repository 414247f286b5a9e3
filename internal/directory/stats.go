package directory

import "chefguide/internal/models"

// Aggregate computes the chef, restaurant and award counts of chefs.
func Aggregate(chefs []models.Chef) models.Stats {
	var s models.Stats

	for i := range chefs {
		s.TotalChefs++
		s.TotalRestaurants += len(chefs[i].Restaurants)

		if chefs[i].Awarded() {
			s.AwardCount++
		}
	}

	return s
}

// AggregateBy computes per-season, per-roster counts. Seasons appear in the order
// they are first seen in chefs.
func AggregateBy(chefs []models.Chef) []models.SeasonStats {
	var out []models.SeasonStats

	index := make(map[int]int)

	for i := range chefs {
		c := &chefs[i]

		pos, ok := index[c.Season]
		if !ok {
			pos = len(out)
			index[c.Season] = pos
			out = append(out, models.SeasonStats{Season: c.Season})
		}

		one := Aggregate(chefs[i : i+1])
		switch c.Category {
		case models.CategoryWhite:
			out[pos].White = out[pos].White.Add(one)
		case models.CategoryBlack:
			out[pos].Black = out[pos].Black.Add(one)
		}
	}

	return out
}
