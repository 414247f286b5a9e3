package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefguide/data"
	"chefguide/internal/directory"
	"chefguide/internal/models"
	"chefguide/internal/normalizer"
	"chefguide/pkg/metadata"
)

func bundledDirectory(t *testing.T) *models.Directory {
	t.Helper()

	var ds models.Dataset
	require.NoError(t, json.Unmarshal(data.Restaurants, &ds))

	dir, err := normalizer.NewProcessor().Process(&ds, data.Name)
	require.NoError(t, err)

	return dir
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"CSV", FormatCSV},
		{"md", FormatMarkdown},
		{"markdown", FormatMarkdown},
		{" sqlite ", FormatSQLite},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "chefs.md"), DefaultPath("out", FormatMarkdown))
	assert.Equal(t, filepath.Join("out", "chefs.db"), DefaultPath("out", FormatSQLite))
	assert.Equal(t, filepath.Join("out", "chefs.csv"), DefaultPath("out", FormatCSV))
}

func TestWriteJSON(t *testing.T) {
	dir := bundledDirectory(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Full(dir), Options{Format: FormatJSON, Pretty: true}))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, dir.Fingerprint, doc.Version)
	assert.Equal(t, models.Stats{TotalChefs: 9, TotalRestaurants: 9, AwardCount: 3}, doc.Stats)
	assert.Empty(t, cmp.Diff(dir.Chefs, doc.Chefs))
}

func TestWriteJSON_FilteredStats(t *testing.T) {
	dir := bundledDirectory(t)
	chefs := directory.Filter(dir.Chefs, directory.Query{Category: "black"})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Snapshot{Directory: dir, Chefs: chefs}, false))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 5, doc.Stats.TotalChefs)
	assert.Len(t, doc.Chefs, 5)
}

func TestWriteCSV(t *testing.T) {
	dir := bundledDirectory(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, dir.Chefs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// header + 9 restaurants + 2 chefs without a restaurant
	require.Len(t, records, 12)
	assert.Equal(t, csvHeader, records[0])

	first := records[1]
	assert.Equal(t, "s1-w-01", first[0])
	assert.Equal(t, "1", first[1])
	assert.Equal(t, "white", first[2])
	assert.Equal(t, "지호 한식당", first[7])

	var noRestaurant []string
	for _, r := range records[1:] {
		if r[7] == "" {
			noRestaurant = append(noRestaurant, r[0])
		}
	}

	assert.Equal(t, []string{"s1-w-03", "s1-b-03"}, noRestaurant)
}

func TestRenderMarkdown_Signed(t *testing.T) {
	dir := bundledDirectory(t)

	out := RenderMarkdown(Full(dir), true)

	ok, err := metadata.Verify(out)
	require.NoError(t, err)
	assert.True(t, ok)

	meta, clean := metadata.Extract(out)
	require.NotNil(t, meta)
	assert.Equal(t, dir.Fingerprint, meta.Version)
	assert.True(t, meta.Validation)

	assert.Contains(t, clean, "9 chefs found · 9 restaurants · 3 awarded")
	assert.Contains(t, clean, "🏆 Winner")
	assert.Contains(t, clean, "+1 more restaurants")
	assert.Contains(t, clean, "Tteokbokki Master (박순희)")
	assert.Contains(t, clean, "Restaurant closed after the show")

	// header, separator and one row per chef
	var rows int
	for _, line := range strings.Split(clean, "\n") {
		if strings.HasPrefix(line, "|") {
			rows++
		}
	}

	assert.Equal(t, 11, rows)
}

func TestRenderMarkdown_EmptyResult(t *testing.T) {
	dir := bundledDirectory(t)

	out := RenderMarkdown(Snapshot{Directory: dir, Chefs: nil}, false)

	assert.Contains(t, out, directory.EmptyHint)
	assert.NotContains(t, out, metadata.TagStart)
}

func TestWriteFile_SQLiteRoundTrip(t *testing.T) {
	dir := bundledDirectory(t)
	path := filepath.Join(t.TempDir(), "nested", DefaultPath("", FormatSQLite))
	ctx := context.Background()

	require.NoError(t, WriteFile(ctx, path, Full(dir), Options{Format: FormatSQLite}))

	// A second export replaces the first instead of failing on primary keys.
	require.NoError(t, WriteFile(ctx, path, Full(dir), Options{Format: FormatSQLite}))

	chefs, err := ReadSQLite(ctx, path)
	require.NoError(t, err)

	if diff := cmp.Diff(dir.Chefs, chefs); diff != "" {
		t.Errorf("sqlite round trip mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, directory.Aggregate(dir.Chefs), directory.Aggregate(chefs))
}

func TestWriteFile_Text(t *testing.T) {
	dir := bundledDirectory(t)
	path := filepath.Join(t.TempDir(), "chefs.csv")

	require.NoError(t, WriteFile(context.Background(), path, Full(dir), Options{Format: FormatCSV}))
	assert.FileExists(t, path)
}

func TestWrite_SQLiteNeedsFile(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, Snapshot{}, Options{Format: FormatSQLite})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
