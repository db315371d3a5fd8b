package client

import (
	"context"
	"errors"
	"sync"
)

// Store keeps an in-memory list of one resource type in sync with the
// server. Reads populate the list; create/update/delete merge the
// server's returned record, so the list never diverges from server
// state after a round trip. A newer Refresh supersedes a still-pending
// one by cancelling its context.
type Store[T any] struct {
	client *Client
	path   string
	idOf   func(*T) string

	mu      sync.Mutex
	items   []T
	loaded  bool
	lastErr string
	gen     int
	cancel  context.CancelFunc
}

// NewStore creates a store for the collection at path (e.g.
// "/api/stories"). idOf extracts a record's id for list merges.
func NewStore[T any](c *Client, path string, idOf func(*T) string) *Store[T] {
	return &Store[T]{
		client: c,
		path:   path,
		idOf:   idOf,
	}
}

// Load fetches the list once. Subsequent calls are no-ops; use Refresh
// to force a re-fetch.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh re-fetches the list, cancelling any previous in-flight
// Refresh. Only the newest call's result lands in the store.
func (s *Store[T]) Refresh(ctx context.Context) error {
	fetchCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	var items []T
	err := s.client.Get(fetchCtx, s.path, &items)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// Superseded; a newer Refresh owns the store now.
		return err
	}
	s.cancel = nil

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.lastErr = err.Error()
		}
		return err
	}
	s.items = items
	s.loaded = true
	s.lastErr = ""
	return nil
}

// Items returns a copy of the current list.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Err returns the message from the most recent failed operation, or "".
func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Create POSTs a record and prepends the server's canonical version to
// the list. On failure the error message is recorded and the error
// returned, so callers can abort whatever triggered the create.
func (s *Store[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	var created T
	if err := s.client.Post(ctx, s.path, body, &created); err != nil {
		s.recordErr(err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]T{created}, s.items...)
	s.lastErr = ""
	s.mu.Unlock()
	return &created, nil
}

// Update PUTs a patch and replaces the matching record with the
// server's canonical version.
func (s *Store[T]) Update(ctx context.Context, id string, body interface{}) (*T, error) {
	var updated T
	if err := s.client.Put(ctx, s.path+"/"+id, body, &updated); err != nil {
		s.recordErr(err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.idOf(&s.items[i]) == id {
			s.items[i] = updated
			break
		}
	}
	s.lastErr = ""
	s.mu.Unlock()
	return &updated, nil
}

// Delete removes a record on the server and from the list.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, s.path+"/"+id, nil); err != nil {
		s.recordErr(err)
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.idOf(&s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

func (s *Store[T]) recordErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}
