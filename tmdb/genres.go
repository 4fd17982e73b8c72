package tmdb

import (
	"context"
	"fmt"
)

// ResolveGenres fetches the movie and TV genre taxonomies and merges them
// into a single lookup. The movie list is fetched first; a failure on
// either taxonomy aborts with an error naming it. On an id defined by both
// taxonomies the TV entry wins (last write), though the real taxonomies do
// not collide.
func (c *Client) ResolveGenres(ctx context.Context) (GenreLookup, error) {
	c.logger.Info().Msg("Fetching genre taxonomies")

	movieGenres, err := c.fetchGenres(ctx, "/genre/movie/list")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie genres: %w", err)
	}

	tvGenres, err := c.fetchGenres(ctx, "/genre/tv/list")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch TV genres: %w", err)
	}

	lookup := make(GenreLookup, len(movieGenres)+len(tvGenres))
	for _, g := range movieGenres {
		lookup[g.ID] = g.Name
	}
	for _, g := range tvGenres {
		lookup[g.ID] = g.Name
	}

	c.logger.Debug().
		Int("movie", len(movieGenres)).
		Int("tv", len(tvGenres)).
		Int("merged", len(lookup)).
		Msg("Built genre lookup")

	return lookup, nil
}

func (c *Client) fetchGenres(ctx context.Context, endpoint string) ([]Genre, error) {
	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return DecodeGenreList(body)
}
