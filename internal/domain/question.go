package domain

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// Difficulty bounds for a question (inclusive).
const (
	DifficultyMin = 1
	DifficultyMax = 5
)

// Question is a trivia question as stored and served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions. Categories are seeded via
// migrations and read-only through the API.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
