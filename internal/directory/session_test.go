package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_StartsUnfiltered(t *testing.T) {
	s := NewSession(directoryOf(roster()))

	assert.True(t, s.Query().IsZero())
	assert.Len(t, s.Filtered(), 6)
	assert.Equal(t, "6 chefs found", s.Summary())
}

func TestSession_Setters(t *testing.T) {
	s := NewSession(directoryOf(roster()))

	s.SetText("napoleon")
	s.SetSeason(1)
	s.SetCategory("black")

	assert.Equal(t, Query{Text: "napoleon", Season: 1, Category: "black"}, s.Query())
	assert.Equal(t, []string{"s1b1"}, ids(s.Filtered()))
	assert.Equal(t, "1 chefs found", s.Summary())

	s.SetQuery(Query{Season: 2})
	assert.Equal(t, []string{"s2w1", "s2b1"}, ids(s.Filtered()))
}

func TestSession_ToggleSeason(t *testing.T) {
	s := NewSession(directoryOf(roster()))

	s.ToggleSeason(1)
	assert.Equal(t, SeasonFilter(1), s.Query().Season)

	s.ToggleSeason(2)
	assert.Equal(t, SeasonFilter(2), s.Query().Season)

	s.ToggleSeason(2)
	assert.Equal(t, AllSeasons, s.Query().Season)
}

func TestSession_ToggleCategory(t *testing.T) {
	s := NewSession(directoryOf(roster()))

	s.ToggleCategory("white")
	assert.Equal(t, CategoryFilter("white"), s.Query().Category)

	s.ToggleCategory("white")
	assert.Equal(t, AllCategories, s.Query().Category)
}

func TestSession_QueryIsACopy(t *testing.T) {
	s := NewSession(directoryOf(roster()))

	q := s.Query()
	q.Text = "changed"

	assert.Empty(t, s.Query().Text)
}

func TestSession_StatsIgnoreFilter(t *testing.T) {
	s := NewSession(directoryOf(roster()))
	before := s.Stats()

	s.SetText("zzz-no-match")

	assert.Empty(t, s.Filtered())
	assert.Equal(t, before, s.Stats())
	assert.Len(t, s.Chefs(), 6)
	assert.Equal(t, "0 chefs found. "+EmptyHint, s.Summary())
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(directoryOf(roster()))

	s.SetQuery(Query{Text: "x", Season: 2, Category: "black"})
	s.Reset()

	assert.True(t, s.Query().IsZero())
}
