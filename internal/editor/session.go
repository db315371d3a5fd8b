// Package editor implements the chapter editing session: a two-mode
// state machine (viewing/editing) with a draft buffer, a save status,
// and timer-chained auto-save. Content changes restart an idle timer;
// when it expires a debounce timer is armed, and when that expires the
// draft is persisted. A newer change supersedes both pending timers.
package editor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storyloom/internal/domain/models"
)

// Status is the save state the editor surfaces next to the content pane.
type Status string

const (
	StatusSaved   Status = "saved"
	StatusSaving  Status = "saving"
	StatusUnsaved Status = "unsaved"
	StatusError   Status = "error"
)

const (
	// DefaultIdleDelay is how long typing must pause before an
	// auto-save is considered.
	DefaultIdleDelay = 30 * time.Second
	// DefaultDebounceDelay is the settle window after the idle timer
	// fires and before the save runs.
	DefaultDebounceDelay = time.Second
	// autoSaveTimeout bounds a timer-triggered save; manual saves use
	// the caller's context instead.
	autoSaveTimeout = 10 * time.Second
)

// Saver persists chapter content. The chapter service satisfies this
// through a small adapter; tests plug in fakes.
type Saver interface {
	SaveContent(ctx context.Context, chapterID, content string) error
}

// Config tunes the auto-save timers. Zero values get the defaults.
type Config struct {
	IdleDelay     time.Duration
	DebounceDelay time.Duration
}

// Session is one user's editing session for one selected chapter.
// Timer callbacks run on their own goroutines, so every state access
// goes through the mutex.
type Session struct {
	mu     sync.Mutex
	saver  Saver
	logger *slog.Logger

	idleDelay     time.Duration
	debounceDelay time.Duration

	chapterID string
	editing   bool
	draft     string
	lastSaved string
	status    Status
	lastErr   error
	closed    bool

	idleTimer     *time.Timer
	debounceTimer *time.Timer
}

// NewSession creates an editor session with nothing selected.
func NewSession(saver Saver, logger *slog.Logger, cfg Config) *Session {
	if cfg.IdleDelay <= 0 {
		cfg.IdleDelay = DefaultIdleDelay
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}

	return &Session{
		saver:         saver,
		logger:        logger,
		idleDelay:     cfg.IdleDelay,
		debounceDelay: cfg.DebounceDelay,
		status:        StatusSaved,
	}
}

// Select switches the session to a chapter. Always allowed: it exits
// edit mode, drops any pending draft, and cancels pending timers.
func (s *Session) Select(chapter *models.Chapter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.stopTimersLocked()
	s.chapterID = chapter.ID
	s.editing = false
	s.draft = chapter.Content
	s.lastSaved = chapter.Content
	s.status = StatusSaved
	s.lastErr = nil
}

// StartEdit enters edit mode, copying the current content into the
// draft buffer. No-op when nothing is selected.
func (s *Session) StartEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.chapterID == "" || s.editing {
		return
	}

	s.editing = true
	s.draft = s.lastSaved
	s.status = StatusSaved
	s.lastErr = nil
}

// SetContent replaces the draft and restarts the auto-save timer chain.
// A previous error state clears back to unsaved.
func (s *Session) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.editing {
		return
	}

	s.draft = content
	s.lastErr = nil
	if content == s.lastSaved {
		s.status = StatusSaved
	} else {
		s.status = StatusUnsaved
	}

	s.stopTimersLocked()
	s.idleTimer = time.AfterFunc(s.idleDelay, s.onIdle)
}

// onIdle fires when typing has paused; it arms the debounce timer.
func (s *Session) onIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.editing {
		return
	}

	s.idleTimer = nil
	s.debounceTimer = time.AfterFunc(s.debounceDelay, s.onDebounce)
}

// onDebounce fires after the settle window and runs the auto-save.
func (s *Session) onDebounce() {
	s.mu.Lock()
	if s.closed || !s.editing {
		s.mu.Unlock()
		return
	}
	s.debounceTimer = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), autoSaveTimeout)
	defer cancel()

	if err := s.save(ctx); err != nil {
		s.logger.Warn("auto-save failed", "chapter_id", s.ChapterID(), "error", err)
	}
}

// Save persists the draft immediately, cancelling any pending timers.
// Saving is skipped when the draft matches the last saved content.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || !s.editing {
		s.mu.Unlock()
		return nil
	}
	s.stopTimersLocked()
	s.mu.Unlock()

	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || !s.editing || s.draft == s.lastSaved {
		s.mu.Unlock()
		return nil
	}
	id := s.chapterID
	content := s.draft
	s.status = StatusSaving
	s.mu.Unlock()

	err := s.saver.SaveContent(ctx, id, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.chapterID != id {
		// Selection moved on while the save was in flight; the result
		// no longer describes the current chapter.
		return err
	}
	if err != nil {
		s.status = StatusError
		s.lastErr = err
		return err
	}

	s.lastSaved = content
	if s.draft == content {
		s.status = StatusSaved
	} else {
		// Edits arrived during the save.
		s.status = StatusUnsaved
	}
	return nil
}

// Cancel exits edit mode and discards the draft. Pending timers are
// cancelled; the last saved content becomes the visible content again.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.editing {
		return
	}

	s.stopTimersLocked()
	s.editing = false
	s.draft = s.lastSaved
	s.status = StatusSaved
	s.lastErr = nil
}

// Close shuts the session down. No further saves fire.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.stopTimersLocked()
	s.closed = true
	s.editing = false
}

func (s *Session) stopTimersLocked() {
	if s.idleTimer != nil {
		s.idleTimer.Stop()
		s.idleTimer = nil
	}
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
		s.debounceTimer = nil
	}
}

// ChapterID returns the currently selected chapter id, or "".
func (s *Session) ChapterID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chapterID
}

// Editing reports whether the session is in edit mode.
func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// Draft returns the current draft buffer.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Status returns the current save status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the error from the most recent failed save, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
