package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/triviahub/trivia-api/internal/domain"
)

// AllCategories selects the quiz pool across every category.
const AllCategories = 0

type questionPool interface {
	GetAll(ctx context.Context) ([]domain.Question, error)
	GetByCategory(ctx context.Context, categoryID int) ([]domain.Question, error)
}

// Selector picks non-repeating random questions for a quiz session.
// Session state (the asked-id set) is caller-supplied on every call, so
// the selector holds no per-session state of its own.
type Selector struct {
	pool questionPool
	intn func(n int) int
}

func NewSelector(pool questionPool) *Selector {
	return &Selector{pool: pool, intn: rand.IntN}
}

// Next returns one question drawn uniformly at random from the unasked
// remainder of the pool, or (nil, nil) when the remainder is empty and
// the session is exhausted. The draw covers only the remainder, so an
// already-asked question is never returned and the index can never run
// past the candidates. An unknown non-zero categoryFilter yields an
// empty pool and therefore immediate exhaustion.
func (s *Selector) Next(ctx context.Context, categoryFilter int, askedIDs []int) (*domain.Question, error) {
	var (
		pool []domain.Question
		err  error
	)
	if categoryFilter == AllCategories {
		pool, err = s.pool.GetAll(ctx)
	} else {
		pool, err = s.pool.GetByCategory(ctx, categoryFilter)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve quiz pool: %w", err)
	}

	asked := make(map[int]struct{}, len(askedIDs))
	for _, id := range askedIDs {
		asked[id] = struct{}{}
	}

	remainder := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := asked[q.ID]; !ok {
			remainder = append(remainder, q)
		}
	}
	if len(remainder) == 0 {
		return nil, nil
	}

	picked := remainder[s.intn(len(remainder))]
	return &picked, nil
}
