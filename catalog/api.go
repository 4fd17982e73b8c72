package catalog

import (
	"context"
	"net/url"

	"github.com/s0up4200/fetcharr/tmdb"
)

// API defines the catalog operations the pipeline needs. *tmdb.Client
// satisfies it; tests inject fakes.
type API interface {
	// ResolveGenres builds the merged genre lookup
	ResolveGenres(ctx context.Context) (tmdb.GenreLookup, error)

	// GetListing fetches one listing endpoint
	GetListing(ctx context.Context, endpoint string, params url.Values) ([]tmdb.Record, error)

	// GetCredits fetches cast and crew for one item
	GetCredits(ctx context.Context, id int64, mediaType tmdb.MediaType) (*tmdb.Credits, error)
}
