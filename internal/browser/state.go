package browser

import "pokedex/internal/pokeapi"

// State is the view state of the browser. Its fields are only changed
// through BeginLoading, ApplyResults and ApplyError.
type State struct {
	records      []pokeapi.Record
	loading      bool
	errorMessage string
}

// Records returns the records currently on display.
func (s *State) Records() []pokeapi.Record { return s.records }

// Loading reports whether a fetch is in flight.
func (s *State) Loading() bool { return s.loading }

// ErrorMessage returns the last error text, or "" when there is none.
func (s *State) ErrorMessage() string { return s.errorMessage }

// BeginLoading marks a fetch as started. Existing records stay visible.
func (s *State) BeginLoading() {
	s.loading = true
	s.errorMessage = ""
}

// ApplyResults replaces the records wholesale and clears any error.
func (s *State) ApplyResults(records []pokeapi.Record) {
	s.loading = false
	s.records = records
	s.errorMessage = ""
}

// ApplyError records a failed fetch. Records are left as they were.
func (s *State) ApplyError(message string) {
	s.loading = false
	s.errorMessage = message
}
