package category

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the category directory over REST.
type HTTPHandler struct {
	directory *Directory
	logger    zerolog.Logger
}

func NewHTTPHandler(directory *Directory, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		directory: directory,
		logger:    logger.With().Str("component", "category_http").Logger(),
	}
}

// HandleList handles GET /categories.
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	labels, err := h.directory.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondInternalError(w, "could not list categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": labels,
	})
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
