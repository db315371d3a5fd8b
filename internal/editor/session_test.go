package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyloom/internal/domain/models"
)

type fakeSaver struct {
	mu    sync.Mutex
	saves []string
	err   error
}

func (f *fakeSaver) SaveContent(ctx context.Context, chapterID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saves = append(f.saves, content)
	return nil
}

func (f *fakeSaver) saved() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.saves...)
}

func (f *fakeSaver) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testChapter(content string) *models.Chapter {
	return &models.Chapter{ID: "ch-1", Content: content}
}

func TestSessionSelectResetsEditMode(t *testing.T) {
	saver := &fakeSaver{}
	s := NewSession(saver, testLogger(), Config{})
	defer s.Close()

	s.Select(testChapter("hello"))
	s.StartEdit()
	s.SetContent("hello world")
	require.True(t, s.Editing())
	assert.Equal(t, StatusUnsaved, s.Status())

	s.Select(testChapter("other"))
	assert.False(t, s.Editing())
	assert.Equal(t, "other", s.Draft())
	assert.Equal(t, StatusSaved, s.Status())
	assert.Empty(t, saver.saved())
}

func TestSessionManualSave(t *testing.T) {
	saver := &fakeSaver{}
	s := NewSession(saver, testLogger(), Config{})
	defer s.Close()

	s.Select(testChapter("one"))
	s.StartEdit()
	s.SetContent("one two")

	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, []string{"one two"}, saver.saved())
	assert.Equal(t, StatusSaved, s.Status())

	// Unchanged draft: a second save is a no-op.
	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, []string{"one two"}, saver.saved())
}

func TestSessionAutoSaveAfterIdle(t *testing.T) {
	saver := &fakeSaver{}
	s := NewSession(saver, testLogger(), Config{
		IdleDelay:     10 * time.Millisecond,
		DebounceDelay: 10 * time.Millisecond,
	})
	defer s.Close()

	s.Select(testChapter(""))
	s.StartEdit()
	s.SetContent("draft text")

	require.Eventually(t, func() bool {
		return s.Status() == StatusSaved
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"draft text"}, saver.saved())
}

func TestSessionTypingSupersedesPendingAutoSave(t *testing.T) {
	saver := &fakeSaver{}
	s := NewSession(saver, testLogger(), Config{
		IdleDelay:     30 * time.Millisecond,
		DebounceDelay: 30 * time.Millisecond,
	})
	defer s.Close()

	s.Select(testChapter(""))
	s.StartEdit()

	// Keep typing faster than the idle delay; no save may fire.
	for i := 0; i < 5; i++ {
		s.SetContent("keystroke")
		time.Sleep(10 * time.Millisecond)
	}
	assert.Empty(t, saver.saved())

	// Stop typing; exactly one save fires with the final draft.
	s.SetContent("final text")
	require.Eventually(t, func() bool {
		return s.Status() == StatusSaved
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"final text"}, saver.saved())
}

func TestSessionSaveErrorIsNonTerminal(t *testing.T) {
	saver := &fakeSaver{}
	saver.setErr(errors.New("store down"))
	s := NewSession(saver, testLogger(), Config{})
	defer s.Close()

	s.Select(testChapter(""))
	s.StartEdit()
	s.SetContent("doomed")

	require.Error(t, s.Save(context.Background()))
	assert.Equal(t, StatusError, s.Status())
	assert.Error(t, s.Err())

	// The next edit clears the error and a later save succeeds.
	saver.setErr(nil)
	s.SetContent("recovered")
	assert.Equal(t, StatusUnsaved, s.Status())
	assert.NoError(t, s.Err())

	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, StatusSaved, s.Status())
	assert.Equal(t, []string{"recovered"}, saver.saved())
}

func TestSessionCancelDiscardsDraft(t *testing.T) {
	saver := &fakeSaver{}
	s := NewSession(saver, testLogger(), Config{
		IdleDelay:     10 * time.Millisecond,
		DebounceDelay: 10 * time.Millisecond,
	})
	defer s.Close()

	s.Select(testChapter("original"))
	s.StartEdit()
	s.SetContent("discarded edits")
	s.Cancel()

	assert.False(t, s.Editing())
	assert.Equal(t, "original", s.Draft())
	assert.Equal(t, StatusSaved, s.Status())

	// The timers armed before Cancel must not fire a save.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, saver.saved())
}

func TestSessionCloseStopsSaves(t *testing.T) {
	saver := &fakeSaver{}
	s := NewSession(saver, testLogger(), Config{
		IdleDelay:     10 * time.Millisecond,
		DebounceDelay: 10 * time.Millisecond,
	})

	s.Select(testChapter(""))
	s.StartEdit()
	s.SetContent("never persisted")
	s.Close()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, saver.saved())
	require.NoError(t, s.Save(context.Background()))
	assert.Empty(t, saver.saved())
}

func TestSessionStartEditWithoutSelection(t *testing.T) {
	s := NewSession(&fakeSaver{}, testLogger(), Config{})
	defer s.Close()

	s.StartEdit()
	assert.False(t, s.Editing())
	s.SetContent("ignored")
	assert.Equal(t, "", s.Draft())
}
