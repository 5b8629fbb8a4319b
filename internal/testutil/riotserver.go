package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// ScriptedResponse is served once before the route falls back to its fixture.
type ScriptedResponse struct {
	Status     int
	RetryAfter string
	Body       string
}

// FakeRiotServer serves the league and match endpoints over TLS.
type FakeRiotServer struct {
	s     *httptest.Server
	token string

	mu       sync.Mutex
	leagues  map[string]any
	lists    map[string][]string
	matches  map[string]any
	scripts  map[string][]ScriptedResponse
	requests []*http.Request
}

// NewFakeRiotServer starts the server, requests must carry the token.
func NewFakeRiotServer(token string) *FakeRiotServer {
	f := &FakeRiotServer{
		token:   token,
		leagues: make(map[string]any),
		lists:   make(map[string][]string),
		matches: make(map[string]any),
		scripts: make(map[string][]ScriptedResponse),
	}

	r := chi.NewRouter()
	r.Use(f.record, f.authenticate, f.scripted)
	r.Route("/lol", func(r chi.Router) {
		r.Get("/league/v4/{division}/by-queue/{queue}", f.leagueHandler)
		r.Get("/match/v5/matches/by-puuid/{puuid}/ids", f.matchListHandler)
		r.Get("/match/v5/matches/{matchId}", f.matchHandler)
	})

	f.s = httptest.NewTLSServer(r)
	return f
}

func (f *FakeRiotServer) Close() {
	f.s.Close()
}

func (f *FakeRiotServer) URL() string {
	return f.s.URL
}

// Client trusts the server certificate.
func (f *FakeRiotServer) Client() *http.Client {
	return f.s.Client()
}

// SetLeague registers the body of an apex league page.
func (f *FakeRiotServer) SetLeague(division, queue string, league any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leagues[division+"/"+queue] = league
}

// SetMatchList registers the match ids of a player.
func (f *FakeRiotServer) SetMatchList(puuid string, ids []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[puuid] = ids
}

// SetMatch registers the body of a match.
func (f *FakeRiotServer) SetMatch(matchId string, match any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matches[matchId] = match
}

// Script queues responses for the exact request path.
func (f *FakeRiotServer) Script(path string, responses ...ScriptedResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[path] = append(f.scripts[path], responses...)
}

// Requests returns the paths of every request received, in order.
func (f *FakeRiotServer) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	paths := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		paths = append(paths, r.URL.Path)
	}
	return paths
}

// Queries returns the raw query of every request received, in order.
func (f *FakeRiotServer) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	queries := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		queries = append(queries, r.URL.RawQuery)
	}
	return queries
}

// LastRequest returns the last request received, nil if none.
func (f *FakeRiotServer) LastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func (f *FakeRiotServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *FakeRiotServer) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Riot-Token") != f.token {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeRiotServer) scripted(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		queue := f.scripts[r.URL.Path]
		var resp *ScriptedResponse
		if len(queue) > 0 {
			resp = &queue[0]
			f.scripts[r.URL.Path] = queue[1:]
		}
		f.mu.Unlock()

		if resp == nil {
			next.ServeHTTP(w, r)
			return
		}

		if resp.RetryAfter != "" {
			w.Header().Set("Retry-After", resp.RetryAfter)
		}
		w.WriteHeader(resp.Status)
		w.Write([]byte(resp.Body))
	})
}

func (f *FakeRiotServer) leagueHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	league, exists := f.leagues[chi.URLParam(r, "division")+"/"+chi.URLParam(r, "queue")]
	f.mu.Unlock()
	serveJSON(w, league, exists)
}

func (f *FakeRiotServer) matchListHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	ids, exists := f.lists[chi.URLParam(r, "puuid")]
	f.mu.Unlock()
	serveJSON(w, ids, exists)
}

func (f *FakeRiotServer) matchHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	match, exists := f.matches[chi.URLParam(r, "matchId")]
	f.mu.Unlock()
	serveJSON(w, match, exists)
}

func serveJSON(w http.ResponseWriter, body any, exists bool) {
	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	// Raw strings are served as is, so tests can send broken payloads.
	if raw, ok := body.(string); ok {
		w.Write([]byte(raw))
		return
	}
	json.NewEncoder(w).Encode(body)
}
