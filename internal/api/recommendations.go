package api

import (
	"net/http"

	"github.com/jumpstart/style-assistant/internal/catalog"
	"github.com/jumpstart/style-assistant/internal/domain"
)

// maxRecommendations caps the products returned by the endpoint.
const maxRecommendations = 3

// HandleRecommendations handles GET /api/recommendations.
//
// The eligible candidate set is deterministic: catalog filtered by the
// optional category, then biased toward products sharing a category or tag
// with the session's last recommendations. The selection within that set is
// a random sample of up to 3, with no ordering guarantee. A missing session
// never creates context.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	sessionID := r.URL.Query().Get("sessionId")

	pool := h.catalog.ByCategory(category)

	if sessionID != "" {
		if conv := h.sessions.Peek(sessionID); conv != nil {
			conv.Lock()
			prior := make([]domain.Product, len(conv.LastProducts))
			copy(prior, conv.LastProducts)
			conv.Unlock()

			if len(prior) > 0 {
				pool = catalog.RelatedTo(prior, pool)
			}
		}
	}

	picks := h.shuffled(pool)
	if len(picks) > maxRecommendations {
		picks = picks[:maxRecommendations]
	}
	if picks == nil {
		picks = []domain.Product{}
	}

	JSON(w, http.StatusOK, picks)
}
