// Package pagination holds the 1-indexed page arithmetic shared by the
// storage backends and the HTTP layer.
package pagination

import (
	"fmt"
	"math"

	e "github.com/gartstein/employees/internal/errors"
)

// Offset returns the number of elements preceding the given page. ok is
// false for invalid arguments and for offsets that do not fit in an int;
// no element can sit on such a page.
func Offset(page, pageSize int) (skip int, ok bool) {
	if !Valid(page, pageSize) {
		return 0, false
	}
	if page-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}

// Valid reports whether page and pageSize describe a real page.
func Valid(page, pageSize int) bool {
	return page >= 1 && pageSize > 0
}

// Validate returns an ErrInvalidInput describing the first illegal argument.
func Validate(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be greater than or equal to 1, got %d", e.ErrInvalidInput, page)
	}
	if pageSize < 1 {
		return fmt.Errorf("%w: pageSize must be greater than 0, got %d", e.ErrInvalidInput, pageSize)
	}
	return nil
}

// Slice returns a copy of at most pageSize items starting at
// Offset(page, pageSize). Invalid arguments and offsets past the end
// yield an empty, non-nil slice.
func Slice[T any](items []T, page, pageSize int) []T {
	skip, ok := Offset(page, pageSize)
	if !ok || skip >= len(items) {
		return []T{}
	}
	n := len(items) - skip
	if pageSize < n {
		n = pageSize
	}
	out := make([]T, n)
	copy(out, items[skip:skip+n])
	return out
}
