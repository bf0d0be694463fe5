package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/jumpstart/style-assistant/internal/domain"
	"github.com/jumpstart/style-assistant/internal/session"
)

// Service orchestrates the chat pipeline: normalization, entity extraction,
// intent classification, response generation and the context commit.
type Service struct {
	sessions   session.Store
	responder  *Responder
	transcript *TranscriptLogger
}

// NewService creates the chat service. transcript may be nil.
func NewService(sessions session.Store, responder *Responder, transcript *TranscriptLogger) *Service {
	return &Service{
		sessions:   sessions,
		responder:  responder,
		transcript: transcript,
	}
}

// Chat processes one user message within its session and returns the reply.
//
// The session context is locked for the whole turn: context mutation is
// read-modify-write and concurrent turns on the same session would corrupt
// the follow-up state. Classification and generation read the pre-turn
// context; all updates (history, entities, lastIntent, followUpCount, last
// recommendations) are committed only after the answer is determined, so a
// failure mid-turn never leaves the context half-updated.
func (s *Service) Chat(ctx context.Context, sessionID, question string) (domain.Reply, error) {
	conv := s.sessions.Get(sessionID)
	conv.Lock()
	defer conv.Unlock()

	normalized := Normalize(question)
	extracted := ExtractEntities(normalized)
	intent := Classify(normalized, conv.LastIntent, conv.FollowUpCount)

	reply, recommended := s.responder.Respond(ctx, intent, question, extracted)

	s.commit(conv, intent, question, reply, extracted, recommended)

	slog.Info("chat turn processed",
		"session_id", sessionID,
		"intent", string(intent),
		"recommendations", len(reply.Recommendations),
		"follow_up_count", conv.FollowUpCount,
	)
	return reply, nil
}

// commit applies the turn's context updates after the answer is known.
func (s *Service) commit(conv *domain.Context, intent domain.Intent, question string, reply domain.Reply, extracted map[string]string, recommended []domain.Product) {
	now := time.Now()
	conv.RecordTurn(domain.RoleUser, question, now)
	conv.RecordTurn(domain.RoleAssistant, reply.Answer, now)
	conv.MergeEntities(extracted)

	// The follow-up budget is a session-lifetime allowance: it only ever
	// increments, so after two turns a question word no longer collapses to
	// the previous intent's follow-up variant, even across topic changes.
	conv.FollowUpCount++
	conv.LastIntent = intent

	if recommended != nil {
		conv.LastProducts = recommended
	}

	s.transcript.Log(TranscriptEvent{
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		SessionID: conv.SessionID,
		Role:      domain.RoleUser,
		Intent:    string(intent),
		Content:   question,
	})
	s.transcript.Log(TranscriptEvent{
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		SessionID: conv.SessionID,
		Role:      domain.RoleAssistant,
		Intent:    string(intent),
		Content:   reply.Answer,
	})
}
