package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"chefguide/internal/directory"
	"chefguide/internal/models"
)

// Document is the JSON export shape.
type Document struct {
	Version    string        `json:"version"`
	Source     string        `json:"source"`
	ExportedAt time.Time     `json:"exportedAt"`
	Stats      models.Stats  `json:"stats"`
	Chefs      []models.Chef `json:"chefs"`
}

// WriteJSON encodes s as a Document. Stats describe the exported chefs.
func WriteJSON(w io.Writer, s Snapshot, pretty bool) error {
	doc := Document{
		Version:    s.Directory.Fingerprint,
		Source:     s.Directory.Source,
		ExportedAt: time.Now().UTC(),
		Stats:      directory.Aggregate(s.Chefs),
		Chefs:      s.Chefs,
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}
