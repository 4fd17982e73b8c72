package catalog

import (
	"strconv"
	"time"

	"github.com/s0up4200/fetcharr/tmdb"
)

const (
	// UnknownTitle is emitted when a record carries neither title nor name.
	UnknownTitle = "Unknown Title"

	// NoDescription is emitted when a record carries no synopsis.
	NoDescription = "No description available."

	// DefaultYear is emitted when no usable date is present.
	DefaultYear = 2000

	// MaxCastEntries caps the cast list per item.
	MaxCastEntries = 10

	// DirectorJob is the exact crew job title that marks a director.
	DirectorJob = "Director"
)

// Normalize converts one raw catalog record into a MediaItem. Pure function,
// no I/O; credits may be nil. withCredits controls whether the cast and
// director lists are modeled at all: when true and credits is nil (fetch
// failed) the lists are present but empty, when false they are omitted from
// the output entirely.
func Normalize(genres tmdb.GenreLookup, rec tmdb.Record, credits *tmdb.Credits, withCredits bool) MediaItem {
	item := MediaItem{
		ID:          strconv.FormatInt(*rec.ID, 10),
		Title:       resolveTitle(rec),
		Type:        string(rec.Kind),
		ImageURL:    tmdb.ImageURL(rec.PosterPath),
		Year:        extractYear(releaseDate(rec)),
		Description: NoDescription,
		Genres:      resolveGenres(genres, rec.GenreIDs),
	}

	if rec.VoteAverage != nil {
		item.Rating = *rec.VoteAverage
	}
	// A present-but-empty synopsis gets the placeholder too; description
	// is a content check, unlike the presence-based title/kind split
	if rec.Overview != nil && *rec.Overview != "" {
		item.Description = *rec.Overview
	}
	if rec.BackdropPath != nil {
		backdrop := tmdb.ImageURL(rec.BackdropPath)
		item.BackdropURL = &backdrop
	}

	if withCredits {
		cast := projectCast(credits)
		directors := projectDirectors(credits)
		item.Cast = &cast
		item.Directors = &directors
	}

	return item
}

// resolveTitle prefers the movie title, then the show name.
func resolveTitle(rec tmdb.Record) string {
	if rec.Title != nil {
		return *rec.Title
	}
	if rec.Name != nil {
		return *rec.Name
	}
	return UnknownTitle
}

// releaseDate prefers the movie release date, then the first air date.
func releaseDate(rec tmdb.Record) *string {
	if rec.ReleaseDate != nil {
		return rec.ReleaseDate
	}
	return rec.FirstAirDate
}

// extractYear parses a YYYY-MM-DD date and returns its year. When the full
// parse fails, a prefix of exactly four ASCII digits is accepted as a bare
// year. Anything else falls back to DefaultYear.
func extractYear(raw *string) int {
	if raw == nil || *raw == "" {
		return DefaultYear
	}

	if t, err := time.Parse("2006-01-02", *raw); err == nil {
		return t.Year()
	}

	if len(*raw) >= 4 && isDigits((*raw)[:4]) {
		if year, err := strconv.Atoi((*raw)[:4]); err == nil {
			return year
		}
	}

	return DefaultYear
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// resolveGenres maps genre ids to names in order, silently dropping ids the
// lookup does not know.
func resolveGenres(genres tmdb.GenreLookup, ids []int64) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := genres[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// projectCast takes the first MaxCastEntries cast members in billing order.
func projectCast(credits *tmdb.Credits) []CastCredit {
	cast := []CastCredit{}
	if credits == nil {
		return cast
	}
	for i, member := range credits.Cast {
		if i >= MaxCastEntries {
			break
		}
		cast = append(cast, CastCredit{
			ID:         strconv.FormatInt(member.ID, 10),
			Name:       member.Name,
			Character:  member.Character,
			ProfileURL: profileURL(member.ProfilePath),
			Order:      member.Order,
		})
	}
	return cast
}

// projectDirectors keeps crew members whose job is exactly DirectorJob.
// The match is case-sensitive: "director" does not count.
func projectDirectors(credits *tmdb.Credits) []DirectorCredit {
	directors := []DirectorCredit{}
	if credits == nil {
		return directors
	}
	for _, member := range credits.Crew {
		if member.Job != DirectorJob {
			continue
		}
		directors = append(directors, DirectorCredit{
			ID:         strconv.FormatInt(member.ID, 10),
			Name:       member.Name,
			Job:        member.Job,
			Department: member.Department,
			ProfileURL: profileURL(member.ProfilePath),
		})
	}
	return directors
}

func profileURL(path *string) *string {
	if path == nil {
		return nil
	}
	resolved := tmdb.ImageURL(path)
	return &resolved
}
