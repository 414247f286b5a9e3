package normalizer

import (
	"chefguide/internal/models"
)

// Transformer flattens the per-season rosters into one uniform chef list.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform normalizes ds. Seasons keep source order; within a season white
// records precede black records. Nothing is skipped or deduplicated.
func (t *Transformer) Transform(ds *models.Dataset) []models.Chef {
	chefs := make([]models.Chef, 0, ds.ChefCount())

	for si := range ds.Seasons {
		season := &ds.Seasons[si]
		for _, rec := range season.Records() {
			chefs = append(chefs, t.chef(rec, season.ID))
		}
	}

	return chefs
}

func (t *Transformer) chef(rec models.Record, season int) models.Chef {
	var c models.Chef

	switch r := rec.(type) {
	case *models.WhiteRecord:
		c = fromWhite(r)
	case *models.BlackRecord:
		c = fromBlack(r)
	}

	c.Season = season
	c.Category = rec.Category()

	return c
}

func fromWhite(r *models.WhiteRecord) models.Chef {
	restaurants := r.Restaurants
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	return models.Chef{
		ID:          r.ID,
		NameKo:      r.NameKo,
		NameEn:      r.NameEn,
		Specialty:   r.Specialty,
		Michelin:    r.Michelin,
		Restaurants: restaurants,
		Rank:        r.Rank,
		Note:        r.Note,
	}
}

func fromBlack(r *models.BlackRecord) models.Chef {
	nameKo := r.RealNameKo
	if nameKo == "" {
		nameKo = r.Nickname
	}

	restaurants := []models.Restaurant{}
	if r.Restaurant != nil {
		restaurants = append(restaurants, *r.Restaurant)
	}

	return models.Chef{
		ID:          r.ID,
		NameKo:      nameKo,
		NameEn:      r.Nickname,
		Nickname:    r.Nickname,
		RealNameKo:  r.RealNameKo,
		Restaurants: restaurants,
		Rank:        r.Rank,
		Note:        r.Note,
	}
}

// Normalize is a convenience wrapper around Transformer.Transform.
func Normalize(ds *models.Dataset) []models.Chef {
	return NewTransformer().Transform(ds)
}
