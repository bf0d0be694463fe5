package bot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// TranscriptEvent is one NDJSON record in a session transcript.
type TranscriptEvent struct {
	Timestamp string `json:"ts"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	Intent    string `json:"intent,omitempty"`
	Content   string `json:"content"`
}

// TranscriptConfig controls conversation transcript logging.
type TranscriptConfig struct {
	Enabled   bool
	Dir       string
	QueueSize int
}

// TranscriptLogger appends chat turns to per-session NDJSON files. Writes go
// through a bounded queue and a single worker goroutine so logging never
// blocks the chat pipeline; events are dropped when the queue is full.
type TranscriptLogger struct {
	dir    string
	queue  chan TranscriptEvent
	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewTranscriptLogger creates a transcript logger and starts its worker.
// Returns nil (a no-op logger) when disabled.
func NewTranscriptLogger(cfg TranscriptConfig, logger *slog.Logger) (*TranscriptLogger, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create transcript directory: %w", err)
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1000
	}

	t := &TranscriptLogger{
		dir:    cfg.Dir,
		queue:  make(chan TranscriptEvent, queueSize),
		logger: logger,
	}
	t.wg.Add(1)
	go t.worker()
	return t, nil
}

// Log enqueues an event. Safe to call on a nil logger; drops the event when
// the queue is full.
func (t *TranscriptLogger) Log(event TranscriptEvent) {
	if t == nil {
		return
	}
	select {
	case t.queue <- event:
	default:
		t.logger.Warn("transcript queue full, dropping event", "session_id", event.SessionID)
	}
}

// Close drains the queue and stops the worker. Safe on a nil logger.
func (t *TranscriptLogger) Close() error {
	if t == nil {
		return nil
	}
	close(t.queue)
	t.wg.Wait()
	return nil
}

func (t *TranscriptLogger) worker() {
	defer t.wg.Done()
	for event := range t.queue {
		if err := t.append(event); err != nil {
			t.logger.Warn("failed to write transcript event", "session_id", event.SessionID, "error", err)
		}
	}
}

func (t *TranscriptLogger) append(event TranscriptEvent) error {
	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal transcript event: %w", err)
	}

	// Session ids come from clients; Base keeps them inside the directory.
	path := filepath.Join(t.dir, filepath.Base(event.SessionID)+".ndjson")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open transcript file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.logger.Debug("failed to close transcript file", "path", path, "error", closeErr)
		}
	}()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append transcript line: %w", err)
	}
	return nil
}
