package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileItemFilter(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{"rating comparison", "Rating >= 7.0", false},
		{"combined conditions", "Rating >= 7.0 && Year > 2015", false},
		{"genre helper", `hasGenre("Drama")`, false},
		{"string helper", `contains(Title, "star")`, false},
		{"empty expression", "", true},
		{"whitespace only", "   ", true},
		{"syntax error", "Rating >=", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileItemFilter(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expr, filter.Expression())
		})
	}
}

func TestItemFilterEvaluate(t *testing.T) {
	item := MediaItem{
		Title:  "Star Trek",
		Type:   "Movie",
		Year:   2009,
		Rating: 7.4,
		Genres: []string{"Science Fiction", "Action"},
	}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"rating passes", "Rating >= 7.0", true},
		{"rating fails", "Rating >= 8.0", false},
		{"year and rating", "Rating > 7 && Year > 2005", true},
		{"has genre case-insensitive", `hasGenre("action")`, true},
		{"missing genre", `hasGenre("Horror")`, false},
		{"title contains", `contains(Title, "TREK")`, true},
		{"type check", `Type == "Movie"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileItemFilter(tt.expr)
			require.NoError(t, err)

			got, err := filter.Evaluate(item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItemFilterNonBooleanResult(t *testing.T) {
	filter, err := CompileItemFilter("Year + 1")
	require.NoError(t, err)

	_, err = filter.Evaluate(MediaItem{Year: 2020})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not evaluate to a boolean")
}
