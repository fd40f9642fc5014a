package question

import (
	"github.com/triviahub/trivia-api/internal/domain"
)

// Paginate slices questions into the requested page and reports the
// total count of the unsliced set. Page numbers are 1-based; anything
// below 1 is clamped to 1. A page past the end yields an empty slice,
// never an error.
func Paginate(questions []domain.Question, pageNumber, pageSize int) ([]domain.Question, int) {
	total := len(questions)
	if pageNumber < 1 {
		pageNumber = 1
	}
	start := (pageNumber - 1) * pageSize
	if start >= total {
		return nil, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return questions[start:end], total
}
