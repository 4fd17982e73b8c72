package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCredits(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 550, "cast": [], "crew": []}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	t.Run("movie endpoint", func(t *testing.T) {
		credits, err := client.GetCredits(context.Background(), 550, MediaTypeMovie)
		require.NoError(t, err)
		assert.Equal(t, "/movie/550/credits", gotPath)
		assert.Equal(t, int64(550), credits.ID)
	})

	t.Run("tv endpoint", func(t *testing.T) {
		_, err := client.GetCredits(context.Background(), 1396, MediaTypeTV)
		require.NoError(t, err)
		assert.Equal(t, "/tv/1396/credits", gotPath)
	})

	t.Run("unknown media type", func(t *testing.T) {
		_, err := client.GetCredits(context.Background(), 1, MediaType("Podcast"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown media type")
	})
}

func TestGetCreditsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_message": "The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.GetCredits(context.Background(), 99999999, MediaTypeMovie)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
}
