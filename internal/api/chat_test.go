package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jumpstart/style-assistant/internal/catalog"
	"github.com/jumpstart/style-assistant/internal/domain"
	"github.com/jumpstart/style-assistant/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChat fakes the chat pipeline behind the handler.
type stubChat struct {
	reply domain.Reply
	err   error
	calls int
}

func (s *stubChat) Chat(_ context.Context, _, _ string) (domain.Reply, error) {
	s.calls++
	return s.reply, s.err
}

func newTestHandler(t *testing.T, svc ChatService, limiter *RateLimiter) (*Handler, *session.MemoryStore) {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)
	store := session.NewMemoryStore(0, 0)
	t.Cleanup(store.Close)
	return NewHandler(svc, store, cat, limiter, nil), store
}

func postChat(h *Handler, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatSuccess(t *testing.T) {
	reply := domain.NewReply("Hello! How can I help?")
	reply.QuickActions = []domain.QuickAction{
		{Text: "Show me trending products"},
		{Text: "What's your return policy?"},
		{Text: "Do you have any sales?"},
	}
	svc := &stubChat{reply: reply}
	h, _ := newTestHandler(t, svc, nil)

	w := postChat(h, `{"question": "Hello there!", "sessionId": "s1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got domain.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Hello! How can I help?", got.Answer)
	assert.Len(t, got.QuickActions, 3)

	// Empty slices serialize as arrays, not null.
	assert.Contains(t, w.Body.String(), `"recommendations":[]`)
	assert.Equal(t, 1, svc.calls)
}

func TestHandleChatValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing sessionId", `{"question": "Hello!"}`},
		{"missing question", `{"sessionId": "s1"}`},
		{"both empty", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubChat{}
			h, store := newTestHandler(t, svc, nil)

			w := postChat(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Missing question or sessionId")
			// Rejected requests must not touch session state or the pipeline.
			assert.Equal(t, 0, store.Len())
			assert.Equal(t, 0, svc.calls)
		})
	}
}

func TestHandleChatMalformedBody(t *testing.T) {
	h, _ := newTestHandler(t, &stubChat{}, nil)

	w := postChat(h, `{"question": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestHandleChatPipelineFailure(t *testing.T) {
	svc := &stubChat{err: errors.New("boom")}
	h, _ := newTestHandler(t, svc, nil)

	w := postChat(h, `{"question": "hi", "sessionId": "s1"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var got domain.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Contains(t, got.Answer, "technical difficulties")
	assert.Empty(t, got.Recommendations)
	assert.Empty(t, got.QuickActions)
}

func TestHandleChatRateLimit(t *testing.T) {
	svc := &stubChat{reply: domain.NewReply("ok")}
	h, _ := newTestHandler(t, svc, NewRateLimiter(1, time.Minute))

	first := postChat(h, `{"question": "hi", "sessionId": "s1"}`)
	assert.Equal(t, http.StatusOK, first.Code)

	second := postChat(h, `{"question": "hi again", "sessionId": "s1"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, 1, svc.calls)

	// The window is keyed per session.
	other := postChat(h, `{"question": "hi", "sessionId": "s2"}`)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestHandleNewSession(t *testing.T) {
	h, store := newTestHandler(t, &stubChat{}, nil)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got["sessionId"])
	// Issuing an id does not create context.
	assert.Equal(t, 0, store.Len())
}
