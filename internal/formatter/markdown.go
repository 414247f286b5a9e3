package formatter

import (
	"strings"

	"chefguide/pkg/metadata"
)

// FormatMarkdown re-aligns every table in content and re-signs it. The VERSION and
// VALIDATION values of an existing metadata block are carried over.
func FormatMarkdown(content string) (string, error) {
	meta, clean := metadata.Extract(content)

	formatted := AlignTables(clean)

	if meta == nil {
		return metadata.Sign(formatted, false, ""), nil
	}

	return metadata.Sign(formatted, meta.Validation, meta.Version), nil
}

// AlignTables re-aligns every table in content and leaves other lines untouched.
// A table is a run of lines that start and end with a pipe whose second line is a
// header separator.
func AlignTables(content string) string {
	lines := strings.Split(content, "\n")

	var (
		out    []string
		buffer []string
	)

	flush := func() {
		out = append(out, alignTable(buffer)...)
		buffer = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
			buffer = append(buffer, line)

			continue
		}

		if len(buffer) > 0 {
			flush()
		}

		out = append(out, line)
	}

	if len(buffer) > 0 {
		flush()
	}

	return strings.Join(out, "\n")
}

func alignTable(rows []string) []string {
	if len(rows) < 2 || !isSeparatorRow(splitRow(rows[1])) {
		return rows
	}

	t := NewTable(splitRow(rows[0])...)
	for _, row := range rows[2:] {
		t.Append(splitRow(row)...)
	}

	return t.Lines()
}

// Changed reports whether formatted differs from original in anything but the
// signing time. A file without a metadata block always counts as changed.
func Changed(original, formatted string) bool {
	before, beforeClean := metadata.Extract(original)
	after, afterClean := metadata.Extract(formatted)

	if before == nil || after == nil {
		return true
	}

	return beforeClean != afterClean ||
		before.Hash != after.Hash ||
		before.Version != after.Version ||
		before.Validation != after.Validation
}
