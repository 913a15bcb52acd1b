package pokeapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newMuxServer(t *testing.T, h http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}
