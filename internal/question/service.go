package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/triviahub/trivia-api/internal/domain"
)

type questionStore interface {
	GetAll(ctx context.Context) ([]domain.Question, error)
	GetByID(ctx context.Context, id int) (*domain.Question, error)
	GetByCategory(ctx context.Context, categoryID int) ([]domain.Question, error)
	SearchByText(ctx context.Context, term string) ([]domain.Question, error)
	Insert(ctx context.Context, q domain.Question) (domain.Question, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

type categoryDirectory interface {
	IsValid(ctx context.Context, id int) (bool, error)
}

// ListCache defines cache behavior for the full question list
// (implemented by the Redis-backed Cache). A nil ListCache disables
// caching entirely.
type ListCache interface {
	Get(ctx context.Context) ([]domain.Question, error)
	Set(ctx context.Context, questions []domain.Question) error
	Invalidate(ctx context.Context) error
}

// Service implements question listing, search, category-scoped
// browsing, creation and deletion over the question store.
type Service struct {
	store     questionStore
	directory categoryDirectory
	cache     ListCache
}

func NewService(store questionStore, directory categoryDirectory, cache ListCache) *Service {
	return &Service{
		store:     store,
		directory: directory,
		cache:     cache,
	}
}

// List returns one page of the full question listing in natural order.
func (s *Service) List(ctx context.Context, pageNumber int) (Page, error) {
	all, err := s.getAll(ctx)
	if err != nil {
		return Page{}, err
	}
	items, total := Paginate(all, pageNumber, domain.QuestionsPerPage)
	return Page{Questions: items, TotalCount: total}, nil
}

// Search returns every question whose text contains term as a
// substring, in natural order. Matching is case-sensitive. An empty
// term is a caller error, not match-everything.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Question, error) {
	if strings.TrimSpace(term) == "" {
		return nil, &domain.ValidationError{Field: "searchTerm", Reason: "must not be empty"}
	}
	questions, err := s.store.SearchByText(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

// ListByCategory returns every question of a category in natural order.
// The category must exist in the directory; an unknown id fails with a
// not-found condition and no partial result.
func (s *Service) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	valid, err := s.directory.IsValid(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, &domain.NotFoundError{Resource: "category", ID: categoryID}
	}
	questions, err := s.store.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list category %d: %w", categoryID, err)
	}
	return questions, nil
}

// Create validates and stores a new question. The category id is not
// checked against the directory here; the store's foreign key rejects
// dangling ids, which surfaces as an unprocessable failure.
func (s *Service) Create(ctx context.Context, req CreateRequest) (domain.Question, error) {
	if strings.TrimSpace(req.Question) == "" {
		return domain.Question{}, &domain.ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Answer) == "" {
		return domain.Question{}, &domain.ValidationError{Field: "answer", Reason: "must not be empty"}
	}
	if req.Category == 0 {
		return domain.Question{}, &domain.ValidationError{Field: "category", Reason: "is required"}
	}
	if req.Difficulty < domain.DifficultyMin || req.Difficulty > domain.DifficultyMax {
		return domain.Question{}, &domain.ValidationError{
			Field:  "difficulty",
			Reason: fmt.Sprintf("must be between %d and %d", domain.DifficultyMin, domain.DifficultyMax),
		}
	}

	created, err := s.store.Insert(ctx, domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return domain.Question{}, &domain.UnprocessableError{Op: "create question", Err: err}
	}
	s.invalidateCache(ctx)
	return created, nil
}

// Delete removes a question permanently. Unknown ids fail with a
// not-found condition and leave the store unchanged.
func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return &domain.UnprocessableError{Op: "delete question", Err: err}
	}
	if existing == nil {
		return &domain.NotFoundError{Resource: "question", ID: id}
	}
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return &domain.UnprocessableError{Op: "delete question", Err: err}
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "question", ID: id}
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *Service) getAll(ctx context.Context) ([]domain.Question, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, all)
	}
	return all, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
