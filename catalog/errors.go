package catalog

import (
	"errors"
	"fmt"
)

// ErrNoCategories is returned when every configured category failed.
var ErrNoCategories = errors.New("no categories were successfully fetched")

// CategoryError wraps a listing fetch or decode failure for one category.
// It aborts only that category; the run continues with the rest.
type CategoryError struct {
	Category string
	Err      error
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("category %s: %v", e.Category, e.Err)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}
