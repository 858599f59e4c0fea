// Package fakeapi provides an in-memory REST service for tests. It serves
// the collection routes ringoctl talks to and records every request it sees.
package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Request is a request received by the fake service.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Reply is a canned response returned instead of the default behavior.
type Reply struct {
	Status int
	Body   string
}

// Server is a fake service backed by an in-memory item store.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	replies  []Reply
	items    map[string]map[string]map[string]any // service -> id -> item
	nextID   int
}

// New starts a fake serving the given collections. The "users" collection
// also serves /users/{id}/password. The server is closed when the test ends.
func New(t *testing.T, services ...string) *Server {
	t.Helper()

	s := &Server{
		items:  make(map[string]map[string]map[string]any),
		nextID: 1,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	for _, svc := range services {
		s.items[svc] = make(map[string]map[string]any)
		r.Route("/"+svc, func(r chi.Router) {
			r.Post("/", s.create(svc))
			r.Get("/", s.search(svc))
			r.Get("/{id}", s.read(svc))
			r.Put("/{id}", s.update(svc))
			r.Delete("/{id}", s.delete(svc))
			if svc == "users" {
				r.Post("/{id}/password", s.password(svc))
			}
		})
	}

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Queue makes the next requests return the given replies, in order.
func (s *Server) Queue(replies ...Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

// Seed stores an item under id.
func (s *Server) Seed(service, id string, item map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item["id"] = id
	s.items[service][id] = item
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// record captures the request and short-circuits it with a queued reply.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		var reply *Reply
		if len(s.replies) > 0 {
			reply = &s.replies[0]
			s.replies = s.replies[1:]
		}
		s.mu.Unlock()

		if reply != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(reply.Status)
			_, _ = io.WriteString(w, reply.Body)
			return
		}

		r.Body = io.NopCloser(strings.NewReader(string(body)))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) create(svc string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item map[string]any
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "body must be a JSON object")
			return
		}

		s.mu.Lock()
		id := strconv.Itoa(s.nextID)
		s.nextID++
		item["id"] = id
		s.items[svc][id] = item
		s.mu.Unlock()

		writeJSON(w, http.StatusCreated, item)
	}
}

func (s *Server) read(svc string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		item, ok := s.items[svc][chi.URLParam(r, "id")]
		s.mu.Unlock()

		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "item not found")
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) update(svc string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var item map[string]any
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "body must be a JSON object")
			return
		}

		s.mu.Lock()
		_, ok := s.items[svc][id]
		if ok {
			item["id"] = id
			s.items[svc][id] = item
		}
		s.mu.Unlock()

		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "item not found")
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) delete(svc string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		_, ok := s.items[svc][id]
		delete(s.items[svc], id)
		s.mu.Unlock()

		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "item not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) search(svc string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, err1 := strconv.Atoi(q.Get("limit"))
		offset, err2 := strconv.Atoi(q.Get("offset"))
		if err1 != nil || err2 != nil || limit < 0 || offset < 0 {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit and offset must be non-negative integers")
			return
		}
		filter := q.Get("search")

		s.mu.Lock()
		ids := make([]string, 0, len(s.items[svc]))
		for id := range s.items[svc] {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		matches := make([]map[string]any, 0)
		for _, id := range ids {
			item := s.items[svc][id]
			if filter != "" {
				raw, _ := json.Marshal(item)
				if !strings.Contains(string(raw), filter) {
					continue
				}
			}
			matches = append(matches, item)
		}
		s.mu.Unlock()

		if offset > len(matches) {
			offset = len(matches)
		}
		matches = matches[offset:]
		if limit < len(matches) {
			matches = matches[:limit]
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) password(svc string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password *string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid body")
			return
		}

		s.mu.Lock()
		_, ok := s.items[svc][chi.URLParam(r, "id")]
		s.mu.Unlock()

		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
			return
		}

		password := "generated-secret"
		if req.Password != nil {
			password = *req.Password
		}
		writeJSON(w, http.StatusOK, map[string]string{"password": password})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}
