package normalizer

import (
	"errors"
	"fmt"

	"chefguide/internal/models"
)

// Validation errors.
var (
	ErrNilDataset            = errors.New("dataset is nil")
	ErrNoSeasons             = errors.New("dataset contains no seasons")
	ErrInvalidSeasonID       = errors.New("season id must be positive")
	ErrDuplicateSeasonID     = errors.New("duplicate season id")
	ErrMissingChefID         = errors.New("chef record missing id")
	ErrDuplicateChefID       = errors.New("duplicate chef id")
	ErrMissingChefName       = errors.New("white chef record missing nameKo")
	ErrMissingNickname       = errors.New("black chef record missing nickname")
	ErrMissingRestaurantName = errors.New("restaurant missing nameKo")
)

// Validator checks dataset integrity before normalization.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns the first integrity problem found, or nil.
func (v *Validator) Validate(ds *models.Dataset) error {
	issues := v.Issues(ds)
	if len(issues) == 0 {
		return nil
	}

	return issues[0]
}

// Issues returns every integrity problem in dataset order.
func (v *Validator) Issues(ds *models.Dataset) []error {
	if ds == nil {
		return []error{ErrNilDataset}
	}

	if len(ds.Seasons) == 0 {
		return []error{ErrNoSeasons}
	}

	var issues []error

	seasons := make(map[int]bool, len(ds.Seasons))
	ids := make(map[string]string)

	for si := range ds.Seasons {
		season := &ds.Seasons[si]

		if season.ID <= 0 {
			issues = append(issues, fmt.Errorf("%w at season index %d", ErrInvalidSeasonID, si))
		} else if seasons[season.ID] {
			issues = append(issues, fmt.Errorf("%w: %d", ErrDuplicateSeasonID, season.ID))
		}

		seasons[season.ID] = true

		for i := range season.White {
			w := &season.White[i]
			where := position(season.ID, models.CategoryWhite, i)

			if w.NameKo == "" {
				issues = append(issues, fmt.Errorf("%w at %s", ErrMissingChefName, where))
			}

			for ri, r := range w.Restaurants {
				if r.NameKo == "" {
					issues = append(issues, fmt.Errorf("%w at %s restaurant %d", ErrMissingRestaurantName, where, ri))
				}
			}

			issues = appendIDIssue(issues, ids, w.ID, where)
		}

		for i := range season.Black {
			b := &season.Black[i]
			where := position(season.ID, models.CategoryBlack, i)

			if b.Nickname == "" {
				issues = append(issues, fmt.Errorf("%w at %s", ErrMissingNickname, where))
			}

			if b.Restaurant != nil && b.Restaurant.NameKo == "" {
				issues = append(issues, fmt.Errorf("%w at %s", ErrMissingRestaurantName, where))
			}

			issues = appendIDIssue(issues, ids, b.ID, where)
		}
	}

	return issues
}

func appendIDIssue(issues []error, seen map[string]string, id, where string) []error {
	if id == "" {
		return append(issues, fmt.Errorf("%w at %s", ErrMissingChefID, where))
	}

	if first, ok := seen[id]; ok {
		return append(issues, fmt.Errorf("%w %q at %s (first seen at %s)", ErrDuplicateChefID, id, where, first))
	}

	seen[id] = where

	return issues
}

func position(season int, category models.Category, index int) string {
	return fmt.Sprintf("season %d %s[%d]", season, category, index)
}
