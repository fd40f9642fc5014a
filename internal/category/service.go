package category

import (
	"context"
	"fmt"

	"github.com/triviahub/trivia-api/internal/domain"
)

type categoryStore interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
}

// Directory derives the id->label mapping from the category store. It
// reads the store on every call; the store stays the source of truth
// and nothing is cached across requests.
type Directory struct {
	store categoryStore
}

func NewDirectory(store categoryStore) *Directory {
	return &Directory{store: store}
}

// List returns the id->label mapping for every known category.
func (d *Directory) List(ctx context.Context) (map[int]string, error) {
	categories, err := d.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	labels := make(map[int]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Type
	}
	return labels, nil
}

// IsValid reports whether some category record has the given id.
func (d *Directory) IsValid(ctx context.Context, id int) (bool, error) {
	categories, err := d.store.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("validate category %d: %w", id, err)
	}
	for _, c := range categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}
