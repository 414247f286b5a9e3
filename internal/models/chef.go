package models

import "time"

// Chef is the uniform, normalized form of a roster entry.
type Chef struct {
	ID          string       `json:"id"`
	NameKo      string       `json:"nameKo"`
	NameEn      string       `json:"nameEn,omitempty"`
	Nickname    string       `json:"nickname,omitempty"`
	RealNameKo  string       `json:"realNameKo,omitempty"`
	Specialty   string       `json:"specialty,omitempty"`
	Michelin    string       `json:"michelin,omitempty"`
	Restaurants []Restaurant `json:"restaurants"`
	Rank        string       `json:"rank,omitempty"`
	Note        string       `json:"note,omitempty"`
	Season      int          `json:"season"`
	Category    Category     `json:"category"`
}

// Awarded reports whether the chef or any of their restaurants carries an award marker.
func (c *Chef) Awarded() bool {
	if c.Michelin != "" {
		return true
	}

	for _, r := range c.Restaurants {
		if r.Awarded() {
			return true
		}
	}

	return false
}

// Stats holds the directory-wide aggregate counts.
type Stats struct {
	TotalChefs       int `json:"totalChefs"`
	TotalRestaurants int `json:"totalRestaurants"`
	AwardCount       int `json:"awardCount"`
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		TotalChefs:       s.TotalChefs + o.TotalChefs,
		TotalRestaurants: s.TotalRestaurants + o.TotalRestaurants,
		AwardCount:       s.AwardCount + o.AwardCount,
	}
}

// SeasonStats holds the counts of one season's roster.
type SeasonStats struct {
	Season int   `json:"season"`
	White  Stats `json:"white"`
	Black  Stats `json:"black"`
}

// Total returns the combined counts of both rosters.
func (s SeasonStats) Total() Stats {
	return s.White.Add(s.Black)
}

// Directory is one loaded, validated and normalized snapshot of the dataset.
type Directory struct {
	LoadedAt    time.Time     `json:"loadedAt"`
	Fingerprint string        `json:"fingerprint"`
	Source      string        `json:"source"`
	Chefs       []Chef        `json:"chefs"`
	Stats       Stats         `json:"stats"`
	Breakdown   []SeasonStats `json:"breakdown"`
}

// ChefByID returns the chef with the given id, or nil.
func (d *Directory) ChefByID(id string) *Chef {
	for i := range d.Chefs {
		if d.Chefs[i].ID == id {
			return &d.Chefs[i]
		}
	}

	return nil
}
