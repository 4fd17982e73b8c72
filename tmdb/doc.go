// Package tmdb provides a client for the TMDB v3 API.
//
// The client covers the endpoints the aggregation pipeline needs: genre
// taxonomies, listing endpoints (popular, top rated, discover) and per-title
// credits. Authentication is a static API key appended to every request as a
// query parameter.
//
// Create a client with an API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient("your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	genres, err := client.ResolveGenres(ctx)
//
// Non-2xx responses surface as *APIError carrying the status code and the
// upstream status_message; malformed bodies surface as *DecodeError. The
// client performs exactly one attempt per call with no retries or backoff.
package tmdb
