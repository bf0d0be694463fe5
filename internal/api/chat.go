package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jumpstart/style-assistant/internal/domain"
)

// maxRequestBodySize caps chat request bodies (64KB is generous for a
// free-text question).
const maxRequestBodySize = 64 << 10

// apologyAnswer is returned with a 500 when the pipeline fails unexpectedly.
const apologyAnswer = "I'm sorry, I'm experiencing technical difficulties right now. Please try again later or contact our customer service team at support@jumpstart.com."

// ChatRequest is the wire format of a chat message.
type ChatRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"sessionId"`
}

// HandleChat handles POST /api/chat.
//
// Missing fields are rejected before any session state is touched. An
// unexpected pipeline failure yields the fixed apology payload with a
// server-error status rather than an error body.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Question == "" || req.SessionID == "" {
		Error(w, http.StatusBadRequest, "Missing question or sessionId")
		return
	}

	if h.limiter != nil && !h.limiter.Allow(req.SessionID) {
		Error(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("chat pipeline panicked", "session_id", req.SessionID, "panic", rec)
			JSON(w, http.StatusInternalServerError, domain.NewReply(apologyAnswer))
		}
	}()

	reply, err := h.svc.Chat(r.Context(), req.SessionID, req.Question)
	if err != nil {
		slog.Error("chat pipeline failed", "session_id", req.SessionID, "error", err)
		JSON(w, http.StatusInternalServerError, domain.NewReply(apologyAnswer))
		return
	}

	JSON(w, http.StatusOK, reply)
}
