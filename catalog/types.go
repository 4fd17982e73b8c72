package catalog

// CastCredit is one cast entry on a normalized item, in billing order.
type CastCredit struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Character  string  `json:"character"`
	ProfileURL *string `json:"profileUrl"`
	Order      int     `json:"order"`
}

// DirectorCredit is one crew entry whose job is exactly "Director".
type DirectorCredit struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Job        string  `json:"job"`
	Department string  `json:"department"`
	ProfileURL *string `json:"profileUrl"`
}

// MediaItem is the normalized, output-ready representation of one movie or
// TV show. Immutable once constructed. ImageURL is the empty string when
// there is no poster, while BackdropURL is null when there is no backdrop;
// the asymmetry is part of the output contract. Cast and Directors are
// pointers so that "credits not modeled for this run" (nil, keys omitted)
// stays distinct from "credits fetch failed for this item" (empty lists,
// keys present as []).
type MediaItem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Type        string            `json:"type_"`
	ImageURL    string            `json:"imageUrl"`
	Year        int               `json:"year"`
	Rating      float64           `json:"rating"`
	Description string            `json:"description"`
	BackdropURL *string           `json:"backdropUrl"`
	Genres      []string          `json:"genres"`
	Cast        *[]CastCredit     `json:"cast,omitempty"`
	Directors   *[]DirectorCredit `json:"directors,omitempty"`
}

// CategoryOutput holds the normalized items of one successfully processed
// category, in listing order.
type CategoryOutput struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Items []MediaItem `json:"items"`
}

// Document is the single persisted artifact: every successful category in
// configured order.
type Document struct {
	Categories []CategoryOutput `json:"categories"`
}
