// Package ui is the Bubble Tea front end of the Pokémon browser.
//
// Views follow the Elm-style View interface (Init/Update/View). The
// BrowserView owns the search form, loading indicator and card grid; the
// render functions in render.go are pure projections of browser.State and
// are shared with the non-interactive CLI commands.
//
// Fetches run as tea.Cmds and come back as FetchDoneMsg, so the view state
// is only ever written from Update.
package ui
