package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/jumpstart/style-assistant/internal/domain"
)

// WebSocketHandler serves the chat pipeline over a WebSocket connection.
// Messages use the same schema as POST /api/chat; each inbound request
// produces exactly one outbound reply on the same connection.
type WebSocketHandler struct {
	svc            ChatService
	allowedOrigins []string
}

// NewWebSocketHandler creates a new WebSocket chat handler.
func NewWebSocketHandler(svc ChatService, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		svc:            svc,
		allowedOrigins: allowedOrigins,
	}
}

// wsError is sent for per-message failures without closing the connection.
type wsError struct {
	Error string `json:"error"`
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.allowedOrigins,
	})
	if err != nil {
		slog.Error("failed to accept websocket", "error", err, "ip", r.RemoteAddr)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "chat ended"); closeErr != nil {
			slog.Debug("failed to close websocket", "error", closeErr)
		}
	}()

	slog.Info("websocket chat connected", "ip", r.RemoteAddr)
	ctx := r.Context()

	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			if !isExpectedClose(err, ctx) {
				slog.Warn("websocket read failed", "error", err)
			}
			return
		}

		var req ChatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if err := h.writeJSON(ctx, ws, wsError{Error: "invalid request body"}); err != nil {
				return
			}
			continue
		}
		if req.Question == "" || req.SessionID == "" {
			if err := h.writeJSON(ctx, ws, wsError{Error: "Missing question or sessionId"}); err != nil {
				return
			}
			continue
		}

		reply, err := h.svc.Chat(ctx, req.SessionID, req.Question)
		if err != nil {
			slog.Error("chat pipeline failed", "session_id", req.SessionID, "error", err)
			reply = domain.NewReply(apologyAnswer)
		}
		if err := h.writeJSON(ctx, ws, reply); err != nil {
			slog.Debug("websocket write failed", "error", err)
			return
		}
	}
}

func (h *WebSocketHandler) writeJSON(ctx context.Context, ws *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return ws.Write(ctx, websocket.MessageText, data)
}

func isExpectedClose(err error, ctx context.Context) bool {
	if ctx.Err() != nil || errors.Is(err, io.EOF) {
		return true
	}
	status := websocket.CloseStatus(err)
	return status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway
}
