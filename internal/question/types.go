package question

import (
	"github.com/triviahub/trivia-api/internal/domain"
)

// Page is one slice of the question listing plus the size of the full
// filtered set the slice was cut from.
type Page struct {
	Questions  []domain.Question
	TotalCount int
}

// CreateRequest carries the fields required to add a question.
type CreateRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// SearchRequest carries the free-text search term.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}
