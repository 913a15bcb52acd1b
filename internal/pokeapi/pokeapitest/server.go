// Package pokeapitest provides an in-process fake of the PokéAPI pokemon
// endpoint for tests.
package pokeapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"pokedex/internal/pokeapi"
)

// Path is the endpoint prefix served by Server.
const Path = "/api/v2/pokemon/"

// Pokemon is a fixture entry served by the fake.
type Pokemon struct {
	ID        int
	Name      string
	Height    int
	Weight    int
	Abilities []string
}

// Fixtures returns the first twelve Pokémon plus pikachu.
func Fixtures() []Pokemon {
	return []Pokemon{
		{1, "bulbasaur", 7, 69, []string{"overgrow", "chlorophyll"}},
		{2, "ivysaur", 10, 130, []string{"overgrow", "chlorophyll"}},
		{3, "venusaur", 20, 1000, []string{"overgrow", "chlorophyll"}},
		{4, "charmander", 6, 85, []string{"blaze", "solar-power"}},
		{5, "charmeleon", 11, 190, []string{"blaze", "solar-power"}},
		{6, "charizard", 17, 905, []string{"blaze", "solar-power"}},
		{7, "squirtle", 5, 90, []string{"torrent", "rain-dish"}},
		{8, "wartortle", 10, 225, []string{"torrent", "rain-dish"}},
		{9, "blastoise", 16, 855, []string{"torrent", "rain-dish"}},
		{10, "caterpie", 3, 29, []string{"shield-dust", "run-away"}},
		{11, "metapod", 7, 99, []string{"shed-skin"}},
		{12, "butterfree", 11, 320, []string{"compound-eyes", "tinted-lens"}},
		{25, "pikachu", 4, 60, []string{"static", "lightning-rod"}},
	}
}

// Server is a fake PokéAPI. Unknown slugs answer 404 "Not Found" like the
// real service.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	byID     map[string]Pokemon
	byName   map[string]Pokemon
	failures map[string]int
	requests []string
}

// NewServer starts a fake loaded with Fixtures. It is closed on test cleanup.
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{
		byID:     make(map[string]Pokemon),
		byName:   make(map[string]Pokemon),
		failures: make(map[string]int),
	}
	for _, p := range Fixtures() {
		s.add(p)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	tb.Cleanup(s.Close)
	return s
}

func (s *Server) add(p Pokemon) {
	s.byID[strconv.Itoa(p.ID)] = p
	s.byName[p.Name] = p
}

// Fail makes requests for slug answer with status.
func (s *Server) Fail(slug string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[slug] = status
}

// Requests returns the slugs requested so far, in arrival order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// RequestCount returns how many requests the fake has served.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// BaseURL is the endpoint to hand to pokeapi.NewClient.
func (s *Server) BaseURL() string {
	return s.URL + Path
}

// NewClient returns a pokeapi.Client wired to this fake.
func (s *Server) NewClient(opts ...pokeapi.Option) *pokeapi.Client {
	opts = append([]pokeapi.Option{pokeapi.WithHTTPClient(s.Client())}, opts...)
	return pokeapi.NewClient(s.BaseURL(), opts...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, Path) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	slug := strings.TrimPrefix(r.URL.Path, Path)

	s.mu.Lock()
	s.requests = append(s.requests, slug)
	status, failing := s.failures[slug]
	p, ok := s.byID[slug]
	if !ok {
		p, ok = s.byName[slug]
	}
	s.mu.Unlock()

	if failing {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(payload(p))
}

func payload(p Pokemon) map[string]any {
	abilities := make([]map[string]any, 0, len(p.Abilities))
	for i, name := range p.Abilities {
		abilities = append(abilities, map[string]any{
			"ability":   map[string]any{"name": name, "url": "https://pokeapi.co/api/v2/ability/" + name + "/"},
			"is_hidden": i > 0,
			"slot":      i + 1,
		})
	}
	return map[string]any{
		"id":     p.ID,
		"name":   p.Name,
		"height": p.Height,
		"weight": p.Weight,
		"sprites": map[string]any{
			"front_default": SpriteURL(p.ID),
		},
		"abilities": abilities,
	}
}

// SpriteURL is the sprite URL the fake reports for id.
func SpriteURL(id int) string {
	return "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/" + strconv.Itoa(id) + ".png"
}
