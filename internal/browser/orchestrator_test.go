package browser

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"pokedex/internal/pokeapi"
	"pokedex/internal/pokeapi/pokeapitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

// fakeFetcher records calls and returns canned results.
type fakeFetcher struct {
	mu         sync.Mutex
	batchCalls int
	names      []string
	batch      []pokeapi.Record
	batchErr   error
	byName     map[string]pokeapi.Record
}

func (f *fakeFetcher) FetchBatch(ctx context.Context, ids []int) ([]pokeapi.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return f.batch, nil
}

func (f *fakeFetcher) FetchByName(ctx context.Context, name string) (pokeapi.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = append(f.names, name)
	rec, ok := f.byName[name]
	if !ok {
		return pokeapi.Record{}, errors.New("404")
	}
	return rec, nil
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batchCalls + len(f.names)
}

func twelve() []pokeapi.Record {
	recs := make([]pokeapi.Record, 0, 12)
	for i, p := range pokeapitest.Fixtures()[:12] {
		recs = append(recs, pokeapi.Record{ID: i + 1, Name: p.Name, Height: p.Height, Weight: p.Weight, Abilities: p.Abilities})
	}
	return recs
}

func TestOrchestrator_BatchSuccess(t *testing.T) {
	f := &fakeFetcher{batch: twelve()}
	o := New(f, nil, nil)

	req := o.LoadDefaultBatch()
	assert.True(t, o.State().Loading(), "loading while in flight")
	assert.Equal(t, KindBatch, req.Kind)

	_, applied := o.Do(context.Background(), req)
	require.True(t, applied)

	st := o.State()
	assert.False(t, st.Loading())
	assert.Empty(t, st.ErrorMessage())
	require.Len(t, st.Records(), 12)
	for i, r := range st.Records() {
		assert.Equal(t, i+1, r.ID)
	}
}

func TestOrchestrator_BatchFailureKeepsPreviousRecords(t *testing.T) {
	f := &fakeFetcher{batch: twelve()}
	o := New(f, nil, nil)
	o.Do(context.Background(), o.LoadDefaultBatch())
	before := o.State().Records()

	f.batchErr = errors.New("boom")
	res, applied := o.Do(context.Background(), o.LoadDefaultBatch())
	require.True(t, applied)

	assert.ErrorIs(t, res.Err, pokeapi.ErrBatchFetch)
	assert.Equal(t, pokeapi.MessageBatchFailed, o.State().ErrorMessage())
	assert.False(t, o.State().Loading())
	assert.Equal(t, before, o.State().Records())
}

func TestOrchestrator_ByNameSuccessReplacesBatch(t *testing.T) {
	pika := pokeapi.Record{ID: 25, Name: "pikachu", Abilities: []string{"static", "lightning-rod"}}
	f := &fakeFetcher{batch: twelve(), byName: map[string]pokeapi.Record{"pikachu": pika}}
	o := New(f, nil, nil)
	o.Do(context.Background(), o.LoadDefaultBatch())

	req, ok := o.LoadByName("PIKACHU")
	require.True(t, ok)
	assert.Equal(t, "pikachu", req.Name)
	o.Do(context.Background(), req)

	require.Len(t, o.State().Records(), 1)
	assert.True(t, strings.EqualFold(o.State().Records()[0].Name, "PIKACHU"))
	assert.Equal(t, []string{"pikachu"}, f.names)
}

func TestOrchestrator_ByNameFailure(t *testing.T) {
	f := &fakeFetcher{}
	o := New(f, nil, nil)

	req, ok := o.LoadByName("notarealpokemon")
	require.True(t, ok)
	res, _ := o.Do(context.Background(), req)

	assert.ErrorIs(t, res.Err, pokeapi.ErrNotFound)
	assert.Equal(t, pokeapi.MessageNotFound, o.State().ErrorMessage())
	assert.Empty(t, o.State().Records())
	assert.False(t, o.State().Loading())
}

func TestOrchestrator_BlankNameIsNoop(t *testing.T) {
	f := &fakeFetcher{batch: twelve()}
	o := New(f, nil, nil)
	o.Do(context.Background(), o.LoadDefaultBatch())
	o.State().ApplyError("previous")
	before := *o.State()
	latest := o.Latest()

	for _, in := range []string{"", " ", "\t\n"} {
		_, ok := o.LoadByName(in)
		assert.False(t, ok, "%q", in)
	}

	assert.Equal(t, before, *o.State())
	assert.Equal(t, latest, o.Latest())
	assert.Equal(t, 1, f.calls(), "only the initial batch was fetched")
}

func TestOrchestrator_StaleResultDiscarded(t *testing.T) {
	pika := pokeapi.Record{ID: 25, Name: "pikachu"}
	mew := pokeapi.Record{ID: 151, Name: "mew"}
	f := &fakeFetcher{byName: map[string]pokeapi.Record{"pikachu": pika, "mew": mew}}
	o := New(f, nil, nil)

	first, _ := o.LoadByName("pikachu")
	second, _ := o.LoadByName("mew")
	require.Greater(t, second.Token, first.Token)

	// Run both concurrently; apply in the "wrong" order.
	var wg sync.WaitGroup
	var r1, r2 Result
	wg.Add(2)
	go func() { defer wg.Done(); r1 = o.Run(context.Background(), first) }()
	go func() { defer wg.Done(); r2 = o.Run(context.Background(), second) }()
	wg.Wait()

	assert.True(t, o.Apply(r2))
	assert.False(t, o.Apply(r1), "older result must be dropped")

	require.Len(t, o.State().Records(), 1)
	assert.Equal(t, "mew", o.State().Records()[0].Name)
}

func TestOrchestrator_StaleResultKeepsLoading(t *testing.T) {
	f := &fakeFetcher{batch: twelve()}
	o := New(f, nil, nil)

	first := o.LoadDefaultBatch()
	second := o.LoadDefaultBatch()

	assert.False(t, o.Apply(o.Run(context.Background(), first)))
	assert.True(t, o.State().Loading(), "newer request still in flight")

	assert.True(t, o.Apply(o.Run(context.Background(), second)))
	assert.False(t, o.State().Loading())
}

func TestOrchestrator_ResultAfterCloseDiscarded(t *testing.T) {
	f := &fakeFetcher{batch: twelve()}
	o := New(f, nil, nil)

	req := o.LoadDefaultBatch()
	o.Close()
	assert.False(t, o.Apply(o.Run(context.Background(), req)))
	assert.Empty(t, o.State().Records())
}

func TestOrchestrator_AgainstFakeService(t *testing.T) {
	srv := pokeapitest.NewServer(t)
	o := New(srv.NewClient(), nil, nil)

	o.Do(context.Background(), o.LoadDefaultBatch())
	first := o.State().Records()
	require.Len(t, first, 12)
	assert.Equal(t, "bulbasaur", first[0].Name)

	o.Do(context.Background(), o.LoadDefaultBatch())
	assert.Equal(t, first, o.State().Records(), "repeated batch loads are identical")

	srv.Fail("12", http.StatusBadGateway)
	o.Do(context.Background(), o.LoadDefaultBatch())
	assert.Equal(t, pokeapi.MessageBatchFailed, o.State().ErrorMessage())
	assert.Equal(t, first, o.State().Records(), "none of the 11 successes are shown")
}
