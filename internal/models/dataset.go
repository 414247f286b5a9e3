// Package models defines the raw dataset records and the normalized directory entities.
package models

// Category identifies which roster of a season a chef competed in.
type Category string

// Roster categories.
const (
	CategoryWhite Category = "white"
	CategoryBlack Category = "black"
)

// Valid reports whether c is one of the known roster categories.
func (c Category) Valid() bool {
	return c == CategoryWhite || c == CategoryBlack
}

// Restaurant is a venue associated with a chef.
type Restaurant struct {
	NameKo      string `json:"nameKo"`
	NameEn      string `json:"nameEn,omitempty"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address"`
	Reservation string `json:"reservation,omitempty"`
	Michelin    string `json:"michelin,omitempty"`
}

// Awarded reports whether the restaurant carries an award marker.
func (r Restaurant) Awarded() bool {
	return r.Michelin != ""
}

// Dataset is the static source document: one entry per season.
type Dataset struct {
	Seasons []Season `json:"seasons"`
}

// Season groups the two rosters of one competition installment.
type Season struct {
	ID    int           `json:"id"`
	White []WhiteRecord `json:"whiteSpoon"`
	Black []BlackRecord `json:"blackSpoon"`
}

// Records returns the season's roster entries in normalization order:
// every white record first, then every black record, each in source order.
func (s *Season) Records() []Record {
	out := make([]Record, 0, len(s.White)+len(s.Black))
	for i := range s.White {
		out = append(out, &s.White[i])
	}

	for i := range s.Black {
		out = append(out, &s.Black[i])
	}

	return out
}

// Record is a raw roster entry. It is implemented only by *WhiteRecord and *BlackRecord.
type Record interface {
	Category() Category
	RecordID() string
	record()
}

// WhiteRecord is the source shape of a white roster chef.
type WhiteRecord struct {
	ID          string       `json:"id"`
	NameKo      string       `json:"nameKo"`
	NameEn      string       `json:"nameEn"`
	Specialty   string       `json:"specialty,omitempty"`
	Michelin    string       `json:"michelin,omitempty"`
	Restaurants []Restaurant `json:"restaurants,omitempty"`
	Rank        string       `json:"rank,omitempty"`
	Note        string       `json:"note,omitempty"`
}

// Category implements Record.
func (*WhiteRecord) Category() Category { return CategoryWhite }

// RecordID implements Record.
func (w *WhiteRecord) RecordID() string { return w.ID }

func (*WhiteRecord) record() {}

// BlackRecord is the source shape of a black roster chef, keyed by nickname.
// A JSON null realNameKo decodes to the empty string.
type BlackRecord struct {
	ID         string      `json:"id"`
	Nickname   string      `json:"nickname"`
	RealNameKo string      `json:"realNameKo,omitempty"`
	Restaurant *Restaurant `json:"restaurant,omitempty"`
	Rank       string      `json:"rank,omitempty"`
	Note       string      `json:"note,omitempty"`
}

// Category implements Record.
func (*BlackRecord) Category() Category { return CategoryBlack }

// RecordID implements Record.
func (b *BlackRecord) RecordID() string { return b.ID }

func (*BlackRecord) record() {}

// ChefCount returns the number of roster entries across all seasons.
func (d *Dataset) ChefCount() int {
	n := 0
	for _, s := range d.Seasons {
		n += len(s.White) + len(s.Black)
	}

	return n
}
