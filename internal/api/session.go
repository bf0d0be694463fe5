package api

import (
	"net/http"

	"github.com/google/uuid"
)

// HandleNewSession handles POST /api/session, issuing a fresh session id.
// Context is still created lazily on the first chat message; this only
// hands out an identifier so clients don't have to invent their own.
func (h *Handler) HandleNewSession(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"sessionId": uuid.NewString()})
}
