package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	backdrop := "https://image.tmdb.org/t/p/w500/backdrop.jpg"
	cast := []CastCredit{
		{ID: "819", Name: "Edward Norton", Character: "The Narrator", Order: 0},
	}
	directors := []DirectorCredit{
		{ID: "7467", Name: "David Fincher", Job: "Director", Department: "Directing"},
	}
	emptyCast := []CastCredit{}
	emptyDirectors := []DirectorCredit{}
	return &Document{
		Categories: []CategoryOutput{
			{
				ID:   "popular-movies",
				Name: "Popular Movies",
				Items: []MediaItem{
					{
						ID:          "550",
						Title:       "Fight Club",
						Type:        "Movie",
						ImageURL:    "https://image.tmdb.org/t/p/w500/poster.jpg",
						Year:        1999,
						Rating:      8.4,
						Description: "An insomniac office worker...",
						BackdropURL: &backdrop,
						Genres:      []string{"Drama"},
						Cast:        &cast,
						Directors:   &directors,
					},
					{
						// Credits modeled for the run, fetch failed for this item
						ID:          "551",
						Title:       "The Score",
						Type:        "Movie",
						ImageURL:    "",
						Year:        2001,
						Rating:      6.8,
						Description: "No description available.",
						Genres:      []string{},
						Cast:        &emptyCast,
						Directors:   &emptyDirectors,
					},
				},
			},
			{
				ID:   "popular-tv",
				Name: "Popular TV Shows",
				Items: []MediaItem{
					{
						ID:          "1396",
						Title:       "Breaking Bad",
						Type:        "TVShow",
						ImageURL:    "",
						Year:        2008,
						Rating:      8.9,
						Description: "No description available.",
						Genres:      []string{},
					},
				},
			},
		},
	}
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.json")

	doc := sampleDocument()
	require.NoError(t, WriteDocument(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *doc, decoded)
}

func TestWriteDocumentCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "movies.json")

	require.NoError(t, WriteDocument(path, sampleDocument()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteDocumentJSONKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.json")

	require.NoError(t, WriteDocument(path, sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	categories, ok := raw["categories"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 2)

	first := categories[0].(map[string]any)
	items := first["items"].([]any)
	item := items[0].(map[string]any)

	// Output contract keys, including the trailing underscore on type_
	for _, key := range []string{"id", "title", "type_", "imageUrl", "year", "rating", "description", "backdropUrl", "genres", "cast", "directors"} {
		assert.Contains(t, item, key)
	}

	// Failed enrichment keeps the keys, as empty arrays
	failedItem := items[1].(map[string]any)
	assert.Equal(t, []any{}, failedItem["cast"])
	assert.Equal(t, []any{}, failedItem["directors"])

	// Credits not modeled: cast and directors keys are absent entirely
	second := categories[1].(map[string]any)
	tvItem := second["items"].([]any)[0].(map[string]any)
	assert.NotContains(t, tvItem, "cast")
	assert.NotContains(t, tvItem, "directors")

	// Backdrop is null when absent, empty poster is an empty string
	assert.Nil(t, tvItem["backdropUrl"])
	assert.Equal(t, "", tvItem["imageUrl"])
}
