// Package export writes directory snapshots to files in several formats.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"chefguide/internal/models"
)

// Format names an export file format.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatSQLite   Format = "sqlite"
)

// ErrUnknownFormat is returned for a format outside the supported set.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat parses a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatMarkdown, FormatSQLite:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension of f including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatSQLite:
		return ".db"
	default:
		return "." + string(f)
	}
}

// Options control an export.
type Options struct {
	Format Format
	// Pretty indents JSON output.
	Pretty bool
	// Sign appends a metadata block to markdown output.
	Sign bool
}

// Snapshot is a directory narrowed to the chefs being exported.
type Snapshot struct {
	Directory *models.Directory
	Chefs     []models.Chef
}

// Full returns a snapshot of every chef in dir.
func Full(dir *models.Directory) Snapshot {
	return Snapshot{Directory: dir, Chefs: dir.Chefs}
}

// Write streams s to w. SQLite needs a file; use WriteFile for it.
func Write(w io.Writer, s Snapshot, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return WriteJSON(w, s, opts.Pretty)
	case FormatCSV:
		return WriteCSV(w, s.Chefs)
	case FormatMarkdown:
		_, err := io.WriteString(w, RenderMarkdown(s, opts.Sign))
		return err
	case FormatSQLite:
		return fmt.Errorf("%w: sqlite cannot be streamed", ErrUnknownFormat)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// WriteFile exports s to path, creating parent directories as needed.
func WriteFile(ctx context.Context, path string, s Snapshot, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if opts.Format == FormatSQLite {
		return WriteSQLite(ctx, path, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, s, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// DefaultPath returns the export path for f under base.
func DefaultPath(base string, f Format) string {
	return filepath.Join(base, "chefs"+f.Extension())
}
