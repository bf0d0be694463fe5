package domain

import (
	"sync"
	"time"
)

// Turn roles in conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Entity kinds extracted from user messages.
const (
	EntityCategory = "category"
	EntitySize     = "size"
	EntityColor    = "color"
)

// Turn is a single message in a conversation.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Context holds mutable per-session conversation state. Context mutation is
// read-modify-write with no atomicity guarantee, so callers must hold the
// context lock for the duration of a turn.
type Context struct {
	mu sync.Mutex

	SessionID     string
	History       []Turn
	LastIntent    Intent
	LastProducts  []Product
	Entities      map[string]string
	FollowUpCount int

	CreatedAt  time.Time
	LastSeenAt time.Time
}

// NewContext creates empty conversation state for a session.
func NewContext(sessionID string) *Context {
	now := time.Now()
	return &Context{
		SessionID:  sessionID,
		Entities:   make(map[string]string),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// Lock serializes access to the context for one turn.
func (c *Context) Lock() { c.mu.Lock() }

// Unlock releases the per-turn lock.
func (c *Context) Unlock() { c.mu.Unlock() }

// RecordTurn appends a message to the conversation history.
func (c *Context) RecordTurn(role, content string, at time.Time) {
	c.History = append(c.History, Turn{Role: role, Content: content, Timestamp: at})
}

// MergeEntities overlays newly extracted entities onto the accumulated
// mapping. Later extractions overwrite earlier ones of the same kind.
func (c *Context) MergeEntities(extracted map[string]string) {
	for kind, value := range extracted {
		c.Entities[kind] = value
	}
}

// RecentTurns returns the last n turns from history.
func (c *Context) RecentTurns(n int) []Turn {
	if n >= len(c.History) {
		return c.History
	}
	return c.History[len(c.History)-n:]
}
