package quiz

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triviahub/trivia-api/internal/domain"
)

type stubPool struct {
	questions []domain.Question
}

func (s *stubPool) GetAll(ctx context.Context) ([]domain.Question, error) {
	return s.questions, nil
}

func (s *stubPool) GetByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range s.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func poolOf(n int) *stubPool {
	qs := make([]domain.Question, n)
	for i := range qs {
		category := 1
		if i%2 == 1 {
			category = 2
		}
		qs[i] = domain.Question{ID: i + 1, Question: "q", Answer: "a", Category: category, Difficulty: 1}
	}
	return &stubPool{questions: qs}
}

// seededSelector pins the draw to a deterministic generator so the
// uniformity test is reproducible.
func seededSelector(pool *stubPool, seed uint64) *Selector {
	s := NewSelector(pool)
	rng := rand.New(rand.NewPCG(seed, 0))
	s.intn = rng.IntN
	return s
}

func TestNextNeverReturnsAskedQuestion(t *testing.T) {
	selector := seededSelector(poolOf(6), 1)
	asked := []int{2, 4, 6}

	for i := 0; i < 200; i++ {
		q, err := selector.Next(context.Background(), AllCategories, asked)
		assert.NoError(t, err)
		assert.NotNil(t, q)
		assert.NotContains(t, asked, q.ID)
	}
}

func TestNextHonorsCategoryFilter(t *testing.T) {
	selector := seededSelector(poolOf(6), 2)

	for i := 0; i < 50; i++ {
		q, err := selector.Next(context.Background(), 2, nil)
		assert.NoError(t, err)
		assert.NotNil(t, q)
		assert.Equal(t, 2, q.Category)
	}
}

func TestNextExhaustedWhenAllAsked(t *testing.T) {
	selector := seededSelector(poolOf(4), 3)

	q, err := selector.Next(context.Background(), AllCategories, []int{1, 2, 3, 4})

	assert.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextExhaustedOnEmptyPool(t *testing.T) {
	selector := seededSelector(&stubPool{}, 4)

	q, err := selector.Next(context.Background(), AllCategories, nil)

	assert.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextUnknownCategoryYieldsExhaustion(t *testing.T) {
	selector := seededSelector(poolOf(6), 5)

	q, err := selector.Next(context.Background(), 999, nil)

	assert.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextSingleRemainingIsDeterministic(t *testing.T) {
	selector := seededSelector(poolOf(5), 6)
	asked := []int{1, 2, 4, 5}

	for i := 0; i < 20; i++ {
		q, err := selector.Next(context.Background(), AllCategories, asked)
		assert.NoError(t, err)
		assert.NotNil(t, q)
		assert.Equal(t, 3, q.ID)
	}
}

func TestNextDrawIsUniformOverRemainder(t *testing.T) {
	selector := seededSelector(poolOf(10), 7)
	asked := []int{1, 2, 3, 4, 5}

	const trials = 5000
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		q, err := selector.Next(context.Background(), AllCategories, asked)
		assert.NoError(t, err)
		assert.NotNil(t, q)
		counts[q.ID]++
	}

	assert.Len(t, counts, 5, "every remaining question gets drawn")
	expected := trials / 5
	for id, got := range counts {
		assert.InDelta(t, expected, got, float64(expected)/5, "question %d drawn far from uniformly", id)
	}
}
