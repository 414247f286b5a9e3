package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefguide/data"
	"chefguide/internal/config"
	"chefguide/internal/models"
)

const sampleDoc = `{
  "seasons": [
    {
      "id": 1,
      "whiteSpoon": [
        {"id": "c1", "nameKo": "김치", "nameEn": "Kimchi",
         "restaurants": [{"nameKo": "김치집", "cuisine": "Korean", "address": "Seoul Jongno"}]}
      ],
      "blackSpoon": [
        {"id": "c2", "nickname": "Napoleon", "realNameKo": null,
         "restaurant": {"nameKo": "나폴레옹식당", "cuisine": "French", "address": "Seoul Gangnam", "michelin": "1-star"}}
      ]
    }
  ]
}`

func testDatasetConfig() config.DatasetConfig {
	cfg := config.Default().Dataset
	cfg.Retry.InitialDelayMs = 1
	cfg.Retry.MaxDelayMs = 5

	return cfg
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "restaurants.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestDecode(t *testing.T) {
	ds, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Len(t, ds.Seasons, 1)

	season := ds.Seasons[0]
	assert.Equal(t, 1, season.ID)
	require.Len(t, season.White, 1)
	require.Len(t, season.Black, 1)

	black := season.Black[0]
	assert.Equal(t, "Napoleon", black.Nickname)
	assert.Empty(t, black.RealNameKo, "null realNameKo decodes as absent")
	require.NotNil(t, black.Restaurant)
	assert.Equal(t, "1-star", black.Restaurant.Michelin)

	records := season.Records()
	require.Len(t, records, 2)
	assert.Equal(t, models.CategoryWhite, records[0].Category())
	assert.Equal(t, models.CategoryBlack, records[1].Category())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Decode(strings.NewReader(`{"seasons": [`))
	assert.Error(t, err)
}

func TestLoader_LoadLocalFile(t *testing.T) {
	cfg := testDatasetConfig()
	cfg.File = writeDataset(t, sampleDoc)

	ds, source, err := NewLoader(cfg).Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.File, source)
	assert.Equal(t, 2, ds.ChefCount())
}

func TestLoader_LoadEmbedded(t *testing.T) {
	cfg := testDatasetConfig()

	ds, source, err := NewLoader(cfg).Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, data.Name, source)
	assert.NotZero(t, ds.ChefCount())
}

func TestLoader_LoadMissingFile(t *testing.T) {
	cfg := testDatasetConfig()
	cfg.File = filepath.Join(t.TempDir(), "missing.json")

	_, _, err := NewLoader(cfg).Load(context.Background(), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_FetchRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		assert.Equal(t, "chefguide/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	cfg := testDatasetConfig()
	cfg.URL = srv.URL

	ds, source, err := NewLoader(cfg).Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, source)
	assert.Equal(t, 2, ds.ChefCount())
	assert.EqualValues(t, 3, calls.Load())
}

func TestLoader_FetchDoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := testDatasetConfig()

	_, status, _, err := NewLoader(cfg).FetchWithMetrics(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatusCode))
	assert.Equal(t, http.StatusNotFound, status)
	assert.EqualValues(t, 1, calls.Load())
}

func TestLoader_FallsBackToBackupURL(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	backup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleDoc))
	}))
	defer backup.Close()

	cfg := testDatasetConfig()
	cfg.URL = broken.URL
	cfg.BackupURLs = []string{backup.URL}

	_, source, err := NewLoader(cfg).Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, backup.URL, source)
}

func TestLoader_InvalidURL(t *testing.T) {
	cfg := testDatasetConfig()

	_, _, _, err := NewLoader(cfg).FetchWithMetrics(context.Background(), "not a url")
	assert.ErrorIs(t, err, ErrInvalidURL)
}
