package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
)

// FakeFantasyServer stands in for the remote backend. It mints sequential
// IDs, records every payload it accepts, and can be told to fail specific
// endpoints. All methods are safe for concurrent use.
type FakeFantasyServer struct {
	s *httptest.Server

	mu       sync.Mutex
	requests int
	logins   int
	leagues  []map[string]any
	matches  []map[string]any
	rooms    []map[string]any
	results  []ResultsSubmission
	failures map[string]int
}

// ResultsSubmission is one recorded PATCH /matches/results/ call.
type ResultsSubmission struct {
	Week    int
	Results []struct {
		MatchID string `json:"match_id"`
		Team    string `json:"team"`
	}
}

func NewFakeFantasyServer() *FakeFantasyServer {
	f := &FakeFantasyServer{
		failures: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Post("/auth/login/", f.loginHandler)
	r.Post("/leagues/", f.createHandler("/leagues/", "league", &f.leagues))
	r.Post("/matches/", f.createHandler("/matches/", "match", &f.matches))
	r.Post("/rooms/", f.createHandler("/rooms/", "room", &f.rooms))
	r.Patch("/matches/results/", f.resultsHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeFantasyServer) Close() {
	f.s.Close()
}

func (f *FakeFantasyServer) URL() string {
	return f.s.URL
}

// FailWith makes every request to path return the given status until reset
// with status 0.
func (f *FakeFantasyServer) FailWith(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if status == 0 {
		delete(f.failures, path)
	} else {
		f.failures[path] = status
	}
}

// Requests counts every request the server received, logins included.
func (f *FakeFantasyServer) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *FakeFantasyServer) Logins() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logins
}

func (f *FakeFantasyServer) Leagues() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any{}, f.leagues...)
}

func (f *FakeFantasyServer) Matches() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any{}, f.matches...)
}

func (f *FakeFantasyServer) Rooms() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any{}, f.rooms...)
}

func (f *FakeFantasyServer) ResultSubmissions() []ResultsSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ResultsSubmission{}, f.results...)
}

func (f *FakeFantasyServer) loginHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	f.logins++
	status := f.failures["/auth/login/"]
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("username") == "" || r.PostForm.Get("password") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"access_token": "fake-token"}`))
}

// createHandler records the decoded payload and answers with a minted ID.
func (f *FakeFantasyServer) createHandler(path, prefix string, sink *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests++
		status := f.failures[path]
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			w.Write([]byte(`{"detail": "forced failure"}`))
			return
		}
		if !authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		*sink = append(*sink, payload)
		id := fmt.Sprintf("%s-%d", prefix, len(*sink))
		f.mu.Unlock()

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id": %q}`, id)
	}
}

func (f *FakeFantasyServer) resultsHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	status := f.failures["/matches/results/"]
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		w.Write([]byte(`{"detail": "forced failure"}`))
		return
	}
	if !authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var payload struct {
		Results []struct {
			MatchID string `json:"match_id"`
			Team    string `json:"team"`
		} `json:"results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.results = append(f.results, ResultsSubmission{Week: week, Results: payload.Results})
	f.mu.Unlock()

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"applied": true}`))
}

func authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") != ""
}
