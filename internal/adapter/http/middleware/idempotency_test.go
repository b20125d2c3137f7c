package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeIdempotencyStore struct {
	records map[string][]byte

	checkCalls  int
	updateCalls int
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{records: map[string][]byte{}}
}

func (s *fakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalls++
	if existing, ok := s.records[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		s.records[key] = response
	}
	return false, nil, nil
}

func (s *fakeIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.updateCalls++
	s.records[key] = response
	return nil
}

func TestIdempotencyMiddleware_SkipsReadRequests(t *testing.T) {
	store := newFakeIdempotencyStore()
	mw := NewIdempotencyMiddleware(store)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if store.checkCalls != 0 {
		t.Fatalf("expected GET to bypass the store, got %d checks", store.checkCalls)
	}
}

func TestIdempotencyMiddleware_SkipsWithoutKey(t *testing.T) {
	store := newFakeIdempotencyStore()
	mw := NewIdempotencyMiddleware(store)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if store.checkCalls != 0 {
		t.Fatalf("expected keyless POST to bypass the store, got %d checks", store.checkCalls)
	}
}

func TestIdempotencyMiddleware_StoresSuccessfulResponse(t *testing.T) {
	store := newFakeIdempotencyStore()
	mw := NewIdempotencyMiddleware(store)

	handlerCalls := 0
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"01HX"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if handlerCalls != 1 {
		t.Fatalf("expected handler to run once, got %d", handlerCalls)
	}
	if store.updateCalls != 1 {
		t.Fatalf("expected response to be stored, got %d updates", store.updateCalls)
	}
	if string(store.records["key-1"]) != `{"id":"01HX"}` {
		t.Fatalf("expected body to be recorded, got %s", store.records["key-1"])
	}
}

func TestIdempotencyMiddleware_ReplaysCachedResponse(t *testing.T) {
	store := newFakeIdempotencyStore()
	store.records["key-1"] = []byte(`{"id":"01HX"}`)
	mw := NewIdempotencyMiddleware(store)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for a replayed key")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatalf("expected replay header to be set")
	}
	if rec.Body.String() != `{"id":"01HX"}` {
		t.Fatalf("expected cached body, got %s", rec.Body.String())
	}
}

func TestIdempotencyMiddleware_SkipsFailedResponses(t *testing.T) {
	store := newFakeIdempotencyStore()
	mw := NewIdempotencyMiddleware(store)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if store.updateCalls != 0 {
		t.Fatalf("expected failed response not to be stored, got %d updates", store.updateCalls)
	}
}
