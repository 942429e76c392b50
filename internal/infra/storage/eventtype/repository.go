package eventtype

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// Repository is the in-memory event type catalog. Names are unique
// case-insensitively; entries are never deleted.
type Repository struct {
	mu    sync.RWMutex
	types []domain.EventType
}

// NewRepository creates an empty catalog.
func NewRepository() *Repository {
	return &Repository{types: make([]domain.EventType, 0)}
}

// Create appends a new entry. The name is stored as given; uniqueness is
// checked case-insensitively.
func (r *Repository) Create(ctx context.Context, name string) (*domain.EventType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOfFold(name) >= 0 {
		return nil, ErrEventTypeExists
	}

	et := domain.EventType{ID: uuid.NewString(), Name: name}
	r.types = append(r.types, et)
	return &et, nil
}

// GetByName resolves an entry case-insensitively.
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOfFold(name)
	if i < 0 {
		return nil, ErrEventTypeNotFound
	}
	et := r.types[i]
	return &et, nil
}

// List returns the catalog sorted by name.
func (r *Repository) List(ctx context.Context) []domain.EventType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.EventType, len(r.types))
	copy(out, r.types)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (r *Repository) indexOfFold(name string) int {
	for i, et := range r.types {
		if strings.EqualFold(et.Name, name) {
			return i
		}
	}
	return -1
}
