package directory

import (
	"fmt"

	"chefguide/internal/models"
)

// EmptyHint is shown when a query matches no chef.
const EmptyHint = "Try adjusting your search or filters"

// Session is the filter state of one viewing session over a directory snapshot.
// It is not safe for concurrent use; each viewer owns its own Session.
type Session struct {
	dir   *models.Directory
	query Query
}

// NewSession starts a session with no active filters.
func NewSession(dir *models.Directory) *Session {
	return &Session{dir: dir}
}

// Query returns the current filter predicate.
func (s *Session) Query() Query {
	return s.query
}

// SetQuery replaces the whole predicate.
func (s *Session) SetQuery(q Query) {
	s.query = q
}

// SetText replaces the free-text query.
func (s *Session) SetText(text string) {
	q := s.query
	q.Text = text
	s.query = q
}

// SetSeason replaces the season selection.
func (s *Session) SetSeason(season SeasonFilter) {
	q := s.query
	q.Season = season
	s.query = q
}

// SetCategory replaces the category selection.
func (s *Session) SetCategory(category CategoryFilter) {
	q := s.query
	q.Category = category
	s.query = q
}

// ToggleSeason selects season, or clears the selection if it is already active.
func (s *Session) ToggleSeason(season SeasonFilter) {
	if s.query.Season == season {
		season = AllSeasons
	}

	s.SetSeason(season)
}

// ToggleCategory selects category, or clears the selection if it is already active.
func (s *Session) ToggleCategory(category CategoryFilter) {
	if s.query.Category == category {
		category = AllCategories
	}

	s.SetCategory(category)
}

// Reset clears every filter.
func (s *Session) Reset() {
	s.query = Query{}
}

// Chefs returns the full normalized list.
func (s *Session) Chefs() []models.Chef {
	return s.dir.Chefs
}

// Filtered returns the chefs matching the current query.
func (s *Session) Filtered() []models.Chef {
	return Filter(s.dir.Chefs, s.query)
}

// Stats returns the directory-wide counts. They do not depend on the query.
func (s *Session) Stats() models.Stats {
	return Aggregate(s.dir.Chefs)
}

// Summary describes the size of the filtered result.
func (s *Session) Summary() string {
	return ResultSummary(len(s.Filtered()))
}

// ResultSummary formats a result count the way the listing header shows it.
func ResultSummary(n int) string {
	if n == 0 {
		return "0 chefs found. " + EmptyHint
	}

	return fmt.Sprintf("%d chefs found", n)
}
