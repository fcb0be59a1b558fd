package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
)

// OMDbStub is an in-process stand-in for the OMDb API.
// Unknown searches and IDs get OMDb's own "not found" bodies.
type OMDbStub struct {
	*httptest.Server

	mu       sync.Mutex
	searches map[string]any
	details  map[string]any
	failing  bool

	SearchCalls atomic.Int32
	LookupCalls atomic.Int32
}

func NewOMDbStub() *OMDbStub {
	s := &OMDbStub{searches: map[string]any{}, details: map[string]any{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

func (s *OMDbStub) AddSearch(text string, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches[text] = body
}

func (s *OMDbStub) AddDetail(imdbID string, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[imdbID] = body
}

// SetFailing makes every request answer 503 until called again with false.
func (s *OMDbStub) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *OMDbStub) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := r.URL.Query()
	if q.Get("s") != "" {
		s.SearchCalls.Add(1)
	} else {
		s.LookupCalls.Add(1)
	}
	if s.failing {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
		return
	}

	var body any
	if text := q.Get("s"); text != "" {
		var ok bool
		if body, ok = s.searches[text]; !ok {
			body = map[string]string{"Response": "False", "Error": "Movie not found!"}
		}
	} else {
		var ok bool
		if body, ok = s.details[q.Get("i")]; !ok {
			body = map[string]string{"Response": "False", "Error": "Incorrect IMDb ID."}
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
