package ui

import "pokedex/internal/browser"

// SearchSubmittedMsg is sent when the user submits a non-blank query.
type SearchSubmittedMsg struct {
	Query string
}

// FetchDoneMsg carries a finished fetch back to the event loop, where it
// is reconciled into the view state.
type FetchDoneMsg struct {
	Result browser.Result
}
