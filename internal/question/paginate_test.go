package question

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triviahub/trivia-api/internal/domain"
)

func makeQuestions(n int) []domain.Question {
	qs := make([]domain.Question, n)
	for i := range qs {
		qs[i] = domain.Question{ID: i + 1, Question: "q", Answer: "a", Category: 1, Difficulty: 1}
	}
	return qs
}

func TestPaginateReturnsAtMostPageSize(t *testing.T) {
	all := makeQuestions(25)

	for page := 1; page <= 4; page++ {
		items, total := Paginate(all, page, domain.QuestionsPerPage)
		assert.LessOrEqual(t, len(items), domain.QuestionsPerPage, "page %d", page)
		assert.Equal(t, 25, total, "total is independent of slicing")
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	all := makeQuestions(12)

	items, total := Paginate(all, 2, domain.QuestionsPerPage)

	assert.Equal(t, 12, total)
	assert.Len(t, items, 2)
	assert.Equal(t, 11, items[0].ID)
	assert.Equal(t, 12, items[1].ID)
}

func TestPaginateBeyondLastPageIsEmpty(t *testing.T) {
	all := makeQuestions(12)

	items, total := Paginate(all, 5, domain.QuestionsPerPage)

	assert.Empty(t, items)
	assert.Equal(t, 12, total)
}

func TestPaginateClampsPageBelowOne(t *testing.T) {
	all := makeQuestions(12)

	for _, page := range []int{0, -1, -100} {
		items, total := Paginate(all, page, domain.QuestionsPerPage)
		assert.Equal(t, all[:10], items, "page %d behaves like page 1", page)
		assert.Equal(t, 12, total)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	items, total := Paginate(nil, 1, domain.QuestionsPerPage)

	assert.Empty(t, items)
	assert.Zero(t, total)
}
