// Package memory provides in-process repositories backed by an ordered,
// mutex-guarded list. Values are copied on the way in and out so callers
// never share storage with each other.
package memory

import (
	"sync"

	e "github.com/gartstein/employees/internal/errors"
	"github.com/gartstein/employees/internal/models"
	"github.com/gartstein/employees/internal/pkg/pagination"
	"github.com/google/uuid"
)

// store keeps entities in insertion order. Lookups are linear scans.
type store[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(*T) string
	setID func(*T, string)
	newID func() string
}

func newStore[T any](id func(*T) string, setID func(*T, string)) *store[T] {
	return &store[T]{
		id:    id,
		setID: setID,
		newID: uuid.NewString,
	}
}

func (s *store[T]) findAll() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copies(s.items)
}

func (s *store[T]) filter(keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*T{}
	for i := range s.items {
		if keep(&s.items[i]) {
			item := s.items[i]
			out = append(out, &item)
		}
	}
	return out
}

func (s *store[T]) findPage(page, pageSize int) *models.Page[*T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content := copies(pagination.Slice(s.items, page, pageSize))
	return models.NewPage(content, page, pageSize, int64(len(s.items)))
}

func (s *store[T]) findByID(id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, e.ErrNotFound
	}
	item := s.items[i]
	return &item, nil
}

func (s *store[T]) exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// create appends the value, assigning an id when it has none. The stored
// value, id included, is written back through item.
func (s *store[T]) create(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id(item) == "" {
		s.setID(item, s.newID())
	}
	s.items = append(s.items, *item)
}

// update replaces the entity in place, keeping its position.
func (s *store[T]) update(item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(s.id(item))
	if i < 0 {
		return e.ErrNotFound
	}
	s.items[i] = *item
	return nil
}

func (s *store[T]) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// indexOf must be called with the lock held.
func (s *store[T]) indexOf(id string) int {
	for i := range s.items {
		if s.id(&s.items[i]) == id {
			return i
		}
	}
	return -1
}

func copies[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		item := items[i]
		out[i] = &item
	}
	return out
}
