package directory

import (
	"fmt"

	"chefguide/internal/models"
)

const (
	previewLimit = 2
	noRestaurant = "No restaurant listed"
	winnerRank   = "Winner"
)

// Card is the display model of one chef in the listing grid.
type Card struct {
	ID              string              `json:"id"`
	Headline        string              `json:"headline"`
	Subtitle        string              `json:"subtitle,omitempty"`
	SeasonLabel     string              `json:"seasonLabel"`
	Category        models.Category     `json:"category"`
	CategoryMark    string              `json:"categoryMark"`
	RankBadge       string              `json:"rankBadge,omitempty"`
	Awarded         bool                `json:"awarded"`
	Preview         []models.Restaurant `json:"preview"`
	MoreRestaurants int                 `json:"moreRestaurants,omitempty"`
	Note            string              `json:"note,omitempty"`
}

// NewCard builds the card of c.
func NewCard(c *models.Chef) Card {
	card := Card{
		ID:          c.ID,
		Headline:    c.NameKo,
		Subtitle:    c.NameEn,
		SeasonLabel: fmt.Sprintf("S%d", c.Season),
		Category:    c.Category,
		Awarded:     c.Awarded(),
		Preview:     []models.Restaurant{},
	}

	if c.Category == models.CategoryBlack {
		card.CategoryMark = "⚫"

		if c.Nickname != "" {
			card.Headline = c.Nickname
		}

		if c.RealNameKo != "" {
			card.Subtitle = c.RealNameKo
		}
	} else {
		card.CategoryMark = "⚪"
	}

	if card.Subtitle == card.Headline {
		card.Subtitle = ""
	}

	switch {
	case c.Rank == winnerRank:
		card.RankBadge = "🏆 " + c.Rank
	case c.Rank != "":
		card.RankBadge = "🥈 " + c.Rank
	}

	if len(c.Restaurants) == 0 {
		card.Note = c.Note
		if card.Note == "" {
			card.Note = noRestaurant
		}

		return card
	}

	n := min(len(c.Restaurants), previewLimit)
	card.Preview = append(card.Preview, c.Restaurants[:n]...)
	card.MoreRestaurants = len(c.Restaurants) - n

	return card
}

// MoreLabel renders the overflow line under the preview, or "" when nothing is hidden.
func (c Card) MoreLabel() string {
	if c.MoreRestaurants <= 0 {
		return ""
	}

	return fmt.Sprintf("+%d more restaurants", c.MoreRestaurants)
}

// Cards builds one card per chef, preserving order.
func Cards(chefs []models.Chef) []Card {
	out := make([]Card, 0, len(chefs))
	for i := range chefs {
		out = append(out, NewCard(&chefs[i]))
	}

	return out
}
