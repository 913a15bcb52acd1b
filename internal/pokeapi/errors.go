package pokeapi

import (
	"errors"
	"fmt"
)

// User-facing messages for the two failure kinds.
const (
	MessageBatchFailed = "Error al cargar los Pokémon"
	MessageNotFound    = "Pokémon no encontrado"
)

var (
	// ErrBatchFetch reports that the default batch could not be loaded.
	// Any single failed request fails the whole batch.
	ErrBatchFetch = errors.New(MessageBatchFailed)

	// ErrNotFound reports that a named lookup failed. Unknown names and
	// transport failures are not distinguished.
	ErrNotFound = errors.New(MessageNotFound)
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Message returns the fixed user-facing text for err, or "" when err is
// neither ErrBatchFetch nor ErrNotFound.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrBatchFetch):
		return MessageBatchFailed
	case errors.Is(err, ErrNotFound):
		return MessageNotFound
	default:
		return ""
	}
}
