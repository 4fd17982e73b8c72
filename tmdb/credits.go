package tmdb

import (
	"context"
	"fmt"
)

// GetCredits fetches cast and crew for one movie or TV show. The endpoint
// variant is selected by media type. Callers treat any failure here as
// "no credits"; it is never fatal to the owning item.
func (c *Client) GetCredits(ctx context.Context, id int64, mediaType MediaType) (*Credits, error) {
	var endpoint string
	switch mediaType {
	case MediaTypeMovie:
		endpoint = fmt.Sprintf("/movie/%d/credits", id)
	case MediaTypeTV:
		endpoint = fmt.Sprintf("/tv/%d/credits", id)
	default:
		return nil, fmt.Errorf("unknown media type: %s", mediaType)
	}

	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	return DecodeCredits(body)
}
