package tmdb

import (
	"encoding/json"
	"fmt"
)

// DecodeGenreList decodes a genre taxonomy response.
func DecodeGenreList(data []byte) ([]Genre, error) {
	var payload genreListResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &DecodeError{Shape: "genre list", Err: err}
	}
	return payload.Genres, nil
}

// DecodeListing decodes a listing response. Optional fields may be absent,
// but every result row must carry a numeric id; a row without one fails
// the whole decode. Each row's Kind tag is assigned here.
func DecodeListing(data []byte) ([]Record, error) {
	var payload listingResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &DecodeError{Shape: "listing", Err: err}
	}
	for i, rec := range payload.Results {
		if rec.ID == nil {
			return nil, &DecodeError{Shape: "listing", Err: fmt.Errorf("result %d is missing an id", i)}
		}
		payload.Results[i].Kind = kindOf(rec)
	}
	return payload.Results, nil
}

// DecodeCredits decodes a credits response.
func DecodeCredits(data []byte) (*Credits, error) {
	var payload Credits
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &DecodeError{Shape: "credits", Err: err}
	}
	return &payload, nil
}
