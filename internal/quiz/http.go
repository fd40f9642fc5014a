package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// PlayRequest is the body of POST /quizzes. PreviousQuestions carries
// the client-held session history; the server stores nothing between
// calls.
type PlayRequest struct {
	QuizCategory struct {
		ID   int    `json:"id"`
		Type string `json:"type"`
	} `json:"quiz_category"`
	PreviousQuestions []int `json:"previous_questions"`
}

// HTTPHandler exposes quiz play over REST.
type HTTPHandler struct {
	selector *Selector
	logger   zerolog.Logger
}

func NewHTTPHandler(selector *Selector, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		selector: selector,
		logger:   logger.With().Str("component", "quiz_http").Logger(),
	}
}

// HandlePlay handles POST /quizzes. Exhaustion is a success-shaped
// response with a null question, signalling the client to end the
// session.
func (h *HTTPHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	picked, err := h.selector.Next(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Int("category", req.QuizCategory.ID).Msg("quiz selection failed")
		httperrors.RespondDomainError(w, err)
		return
	}

	resp := map[string]interface{}{
		"success":  true,
		"question": picked,
	}
	if picked == nil {
		resp["exhausted"] = true
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
