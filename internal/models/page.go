package models

// Page is one slice of an ordered collection together with the
// information needed to navigate the rest of it. Page numbers are 1-indexed.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a Page, deriving TotalPages from total and size.
// A nil content slice is replaced with an empty one.
func NewPage[T any](content []T, page, size int, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int(total / int64(size))
		if total%int64(size) != 0 {
			totalPages++
		}
	}
	return &Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
