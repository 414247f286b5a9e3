// Package directory filters and summarises a normalized chef list and shapes it for display.
package directory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chefguide/internal/models"
)

// Filter parsing errors.
var (
	ErrInvalidSeason   = errors.New("season must be 'all' or a positive season number")
	ErrInvalidCategory = errors.New("category must be one of: all, white, black")
)

// SeasonFilter selects one season. The zero value selects every season.
type SeasonFilter int

// AllSeasons disables season filtering.
const AllSeasons SeasonFilter = 0

// String returns "all" or the season number.
func (s SeasonFilter) String() string {
	if s == AllSeasons {
		return "all"
	}

	return strconv.Itoa(int(s))
}

// ParseSeason parses "all", "" or a positive season number.
func ParseSeason(s string) (SeasonFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return AllSeasons, nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(s), "S"))
	if err != nil || n <= 0 {
		return AllSeasons, fmt.Errorf("%w: %q", ErrInvalidSeason, s)
	}

	return SeasonFilter(n), nil
}

// CategoryFilter selects one roster. The zero value selects both.
type CategoryFilter string

// AllCategories disables category filtering.
const AllCategories CategoryFilter = ""

// String returns "all" or the category name.
func (c CategoryFilter) String() string {
	if c == AllCategories {
		return "all"
	}

	return string(c)
}

// ParseCategory parses "all", "" or a roster category name.
func ParseCategory(s string) (CategoryFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return AllCategories, nil
	}

	if !models.Category(s).Valid() {
		return AllCategories, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}

	return CategoryFilter(s), nil
}

// Query is the conjunctive filter predicate. The zero value matches every chef.
type Query struct {
	Text     string         `json:"q"`
	Season   SeasonFilter   `json:"season"`
	Category CategoryFilter `json:"category"`
}

// IsZero reports whether q matches everything.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Text) == "" && q.Season == AllSeasons && q.Category == AllCategories
}

// Matches reports whether the chef passes every active filter of q.
func (q Query) Matches(c *models.Chef) bool {
	if q.Season != AllSeasons && c.Season != int(q.Season) {
		return false
	}

	if q.Category != AllCategories && c.Category != models.Category(q.Category) {
		return false
	}

	if strings.TrimSpace(q.Text) == "" {
		return true
	}

	return matchesText(c, strings.ToLower(q.Text))
}

func matchesText(c *models.Chef, needle string) bool {
	for _, field := range []string{c.NameKo, c.NameEn, c.Nickname} {
		if containsFold(field, needle) {
			return true
		}
	}

	for _, r := range c.Restaurants {
		if containsFold(r.NameKo, needle) || containsFold(r.NameEn, needle) {
			return true
		}
	}

	return false
}

// containsFold expects needle to be lower-cased already. Absent fields never match.
func containsFold(field, needle string) bool {
	if field == "" {
		return false
	}

	return strings.Contains(strings.ToLower(field), needle)
}

// Filter returns the chefs matching q, in input order.
func Filter(chefs []models.Chef, q Query) []models.Chef {
	out := make([]models.Chef, 0, len(chefs))
	for i := range chefs {
		if q.Matches(&chefs[i]) {
			out = append(out, chefs[i])
		}
	}

	return out
}
