package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"chefguide/internal/models"
)

var csvHeader = []string{
	"id", "season", "category", "name_ko", "name_en", "nickname", "rank",
	"restaurant_ko", "restaurant_en", "cuisine", "address", "michelin",
}

// WriteCSV writes one row per chef and restaurant. A chef without restaurants
// gets one row with empty restaurant columns.
func WriteCSV(w io.Writer, chefs []models.Chef) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := range chefs {
		c := &chefs[i]

		base := []string{
			c.ID,
			strconv.Itoa(c.Season),
			string(c.Category),
			c.NameKo,
			c.NameEn,
			c.Nickname,
			c.Rank,
		}

		if len(c.Restaurants) == 0 {
			if err := cw.Write(append(base, "", "", "", "", c.Michelin)); err != nil {
				return err
			}

			continue
		}

		for _, r := range c.Restaurants {
			michelin := r.Michelin
			if michelin == "" {
				michelin = c.Michelin
			}

			row := append(append([]string(nil), base...), r.NameKo, r.NameEn, r.Cuisine, r.Address, michelin)
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}
