package question

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/domain"
	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

type labelLister interface {
	List(ctx context.Context) (map[int]string, error)
}

// HTTPHandler exposes the question operations over REST.
type HTTPHandler struct {
	svc    *Service
	labels labelLister
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, labels labelLister, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		labels: labels,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// HandleQuestions handles GET /questions (paginated listing) and
// POST /questions (create).
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "page must be an integer")
			return
		}
		page = parsed
	}

	result, err := h.svc.List(r.Context(), page)
	if err != nil {
		h.logger.Error().Err(err).Int("page", page).Msg("question listing failed")
		httperrors.RespondDomainError(w, err)
		return
	}

	labels, err := h.labels.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondInternalError(w, "could not list categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        nonNil(result.Questions),
		"total_questions":  result.TotalCount,
		"categories":       labels,
		"current_category": categoryIDs(result.Questions),
	})
}

func (h *HTTPHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if !domain.IsValidation(err) {
			h.logger.Error().Err(err).Msg("question create failed")
		}
		httperrors.RespondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"question": created,
	})
}

// HandleDelete handles DELETE /questions/{id}.
func (h *HTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "question id must be an integer")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if !domain.IsNotFound(err) {
			h.logger.Error().Err(err).Int("question_id", id).Msg("question delete failed")
		}
		httperrors.RespondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// HandleSearch handles POST /questions/search.
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	questions, err := h.svc.Search(r.Context(), req.SearchTerm)
	if err != nil {
		if !domain.IsValidation(err) {
			h.logger.Error().Err(err).Msg("question search failed")
		}
		httperrors.RespondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        nonNil(questions),
		"total_questions":  len(questions),
		"current_category": categoryIDs(questions),
	})
}

// HandleByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandler) HandleByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "category id must be an integer")
		return
	}

	questions, err := h.svc.ListByCategory(r.Context(), id)
	if err != nil {
		if !domain.IsNotFound(err) {
			h.logger.Error().Err(err).Int("category_id", id).Msg("category listing failed")
		}
		httperrors.RespondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        nonNil(questions),
		"total_questions":  len(questions),
		"current_category": categoryIDs(questions),
	})
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// nonNil keeps empty result sets as [] rather than null in JSON.
func nonNil(questions []domain.Question) []domain.Question {
	if questions == nil {
		return []domain.Question{}
	}
	return questions
}

func categoryIDs(questions []domain.Question) []int {
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.Category)
	}
	return ids
}
