package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// NormalizeWhitespace replaces runs of whitespace with a single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateWidth shortens str to at most maxWidth terminal columns, ending with "…"
// when cut. Hangul and other wide runes count as two columns.
func (s *StringHelper) TruncateWidth(str string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(str) <= maxWidth {
		return str
	}

	return runewidth.Truncate(str, maxWidth, "…")
}

// EscapeTableCell makes str safe to place inside a markdown table cell.
func (s *StringHelper) EscapeTableCell(str string) string {
	str = s.NormalizeWhitespace(str)

	return strings.ReplaceAll(str, "|", `\|`)
}
