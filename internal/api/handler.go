// Package api provides HTTP handlers for the assistant API.
package api

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jumpstart/style-assistant/internal/catalog"
	"github.com/jumpstart/style-assistant/internal/domain"
	"github.com/jumpstart/style-assistant/internal/session"
)

// ChatService processes one chat message within a session.
type ChatService interface {
	Chat(ctx context.Context, sessionID, question string) (domain.Reply, error)
}

// Handler serves the chat and recommendations endpoints.
type Handler struct {
	svc      ChatService
	sessions session.Store
	catalog  *catalog.Catalog
	limiter  *RateLimiter

	// rng drives recommendation shuffling. It is injectable so tests can
	// pin the seed; rand.Rand is not goroutine safe, hence the mutex.
	randMu sync.Mutex
	rng    *rand.Rand
}

// NewHandler creates a new Handler. limiter and rng may be nil; a nil rng
// falls back to a time-seeded source.
func NewHandler(svc ChatService, sessions session.Store, cat *catalog.Catalog, limiter *RateLimiter, rng *rand.Rand) *Handler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Handler{
		svc:      svc,
		sessions: sessions,
		catalog:  cat,
		limiter:  limiter,
		rng:      rng,
	}
}

// RegisterRoutes registers the assistant API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.HandleChat)
		r.Get("/recommendations", h.HandleRecommendations)
		r.Post("/session", h.HandleNewSession)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// shuffled returns a shuffled copy of products.
func (h *Handler) shuffled(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	h.randMu.Lock()
	h.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	h.randMu.Unlock()
	return out
}
