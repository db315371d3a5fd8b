package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func recordStore(c *Client) *Store[record] {
	return NewStore(c, "/api/records", func(r *record) string { return r.ID })
}

func TestStoreLoadFetchesOnce(t *testing.T) {
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		json.NewEncoder(w).Encode([]record{{ID: "1", Name: "first"}})
	}))
	defer srv.Close()

	s := recordStore(New(srv.URL))
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, int32(1), fetches.Load())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "first", s.Items()[0].Name)
}

func TestStoreCreateMergesServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]record{{ID: "1", Name: "old"}})
		case http.MethodPost:
			var in record
			json.NewDecoder(r.Body).Decode(&in)
			// The server is canonical: it assigns the id.
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(record{ID: "2", Name: in.Name})
		}
	}))
	defer srv.Close()

	s := recordStore(New(srv.URL))
	require.NoError(t, s.Load(context.Background()))

	created, err := s.Create(context.Background(), record{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "2", created.ID)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
}

func TestStoreUpdateReplacesMatchingRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]record{{ID: "1", Name: "old"}, {ID: "2", Name: "other"}})
		case http.MethodPut:
			json.NewEncoder(w).Encode(record{ID: "1", Name: "renamed"})
		}
	}))
	defer srv.Close()

	s := recordStore(New(srv.URL))
	require.NoError(t, s.Load(context.Background()))

	updated, err := s.Update(context.Background(), "1", record{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "renamed", items[0].Name)
	assert.Equal(t, "other", items[1].Name)
}

func TestStoreDeleteRemovesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]record{{ID: "1"}, {ID: "2"}})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	s := recordStore(New(srv.URL))
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Delete(context.Background(), "1"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestStoreRecordsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Record not found",
			"error":   "not found",
		})
	}))
	defer srv.Close()

	s := recordStore(New(srv.URL))
	_, err := s.Update(context.Background(), "nope", record{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Record not found", apiErr.Message)
	assert.NotEmpty(t, s.Err())
}

func TestStoreRefreshSupersedesPendingFetch(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// First fetch stalls until the second one has finished.
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
			json.NewEncoder(w).Encode([]record{{ID: "stale"}})
			return
		}
		json.NewEncoder(w).Encode([]record{{ID: "fresh"}})
	}))
	defer srv.Close()

	s := recordStore(New(srv.URL))

	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.Background()) }()

	// Wait for the first fetch to be in flight, then supersede it.
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	require.NoError(t, s.Refresh(context.Background()))
	close(release)
	<-done

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
}

func TestClientSendsIdentityHeaders(t *testing.T) {
	var gotAuth, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUser = r.Header.Get("X-User-Id")
		json.NewEncoder(w).Encode([]record{})
	}))
	defer srv.Close()

	var out []record
	require.NoError(t, New(srv.URL, WithUserID("user-1")).Get(context.Background(), "/api/records", &out))
	assert.Empty(t, gotAuth)
	assert.Equal(t, "user-1", gotUser)

	// A bearer token wins over the user-id header.
	require.NoError(t, New(srv.URL, WithToken("tok"), WithUserID("user-1")).Get(context.Background(), "/api/records", &out))
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Empty(t, gotUser)
}
