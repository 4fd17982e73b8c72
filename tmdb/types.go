package tmdb

// MediaType distinguishes movie records from TV show records.
type MediaType string

const (
	MediaTypeMovie MediaType = "Movie"
	MediaTypeTV    MediaType = "TVShow"
)

// Genre is a single entry from a TMDB genre taxonomy.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// genreListResponse wraps a genre taxonomy response.
type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

// GenreLookup maps genre ids to display names. Built once per run by
// merging the movie and TV taxonomies; read-only afterwards.
type GenreLookup map[int64]string

// Record is one row from a listing endpoint. Optional upstream fields are
// pointer-typed so that absence can be told apart from the zero value.
// Kind is decided once, in DecodeListing, from which of title/name is
// present rather than from their content (an empty-string title still
// classifies as a movie); everything downstream reads the tag.
type Record struct {
	ID           *int64   `json:"id"`
	Title        *string  `json:"title"`
	Name         *string  `json:"name"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
	ReleaseDate  *string  `json:"release_date"`
	FirstAirDate *string  `json:"first_air_date"`
	VoteAverage  *float64 `json:"vote_average"`
	Overview     *string  `json:"overview"`
	GenreIDs     []int64  `json:"genre_ids"`

	Kind MediaType `json:"-"`
}

// kindOf classifies a record by title/name presence.
func kindOf(r Record) MediaType {
	if r.Title != nil {
		return MediaTypeMovie
	}
	return MediaTypeTV
}

// listingResponse wraps a listing endpoint response.
type listingResponse struct {
	Results []Record `json:"results"`
}

// CastMember is one cast entry from a credits response, in billing order.
type CastMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Order       int     `json:"order"`
	ProfilePath *string `json:"profile_path"`
}

// CrewMember is one crew entry from a credits response.
type CrewMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	ProfilePath *string `json:"profile_path"`
}

// Credits holds cast and crew for one movie or TV show.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}
