// Package browser holds the Pokémon browser's view state and the fetch
// orchestrator that drives it.
//
// Dispatching and applying happen on one goroutine (the UI event loop);
// only Run may be called elsewhere. Every dispatch takes a new request
// token and only the latest token's result is applied, so a slow earlier
// fetch can never overwrite a newer one.
package browser

import (
	"context"
	"errors"
	"fmt"

	"pokedex/internal/pokeapi"

	"go.uber.org/zap"
)

// Fetcher is the data source the orchestrator reads from.
// *pokeapi.Client implements it.
type Fetcher interface {
	FetchBatch(ctx context.Context, ids []int) ([]pokeapi.Record, error)
	FetchByName(ctx context.Context, name string) (pokeapi.Record, error)
}

var _ Fetcher = (*pokeapi.Client)(nil)

// Kind identifies which load a request performs.
type Kind int

const (
	KindBatch Kind = iota
	KindByName
)

func (k Kind) String() string {
	switch k {
	case KindBatch:
		return "batch"
	case KindByName:
		return "by_name"
	default:
		return "unknown"
	}
}

// Token orders dispatched requests. Higher is newer.
type Token uint64

// Request is a dispatched, not yet executed, fetch.
type Request struct {
	Token Token
	Kind  Kind
	Name  string // normalized name for KindByName
}

// Result is the outcome of running a Request.
type Result struct {
	Token   Token
	Kind    Kind
	Records []pokeapi.Record
	Err     error
}

// Orchestrator issues fetches and reconciles their results into a State.
type Orchestrator struct {
	fetcher Fetcher
	state   *State
	logger  *zap.Logger
	latest  Token
	closed  bool
}

// New creates an orchestrator writing into state. A nil state gets a fresh
// one; a nil logger disables logging.
func New(fetcher Fetcher, state *State, logger *zap.Logger) *Orchestrator {
	if state == nil {
		state = &State{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{fetcher: fetcher, state: state, logger: logger}
}

// State returns the state the orchestrator writes into.
func (o *Orchestrator) State() *State {
	return o.state
}

// Latest returns the most recently dispatched token (0 before any dispatch).
func (o *Orchestrator) Latest() Token {
	return o.latest
}

// LoadDefaultBatch dispatches the fixed batch load and marks the state as
// loading. Run the returned request to perform it.
func (o *Orchestrator) LoadDefaultBatch() Request {
	return o.dispatch(Request{Kind: KindBatch})
}

// LoadByName dispatches a lookup by name. Blank input is rejected without
// touching the state; ok is false in that case.
func (o *Orchestrator) LoadByName(name string) (req Request, ok bool) {
	slug := pokeapi.NormalizeName(name)
	if slug == "" {
		return Request{}, false
	}
	return o.dispatch(Request{Kind: KindByName, Name: slug}), true
}

func (o *Orchestrator) dispatch(req Request) Request {
	o.latest++
	req.Token = o.latest
	o.state.BeginLoading()
	o.logger.Debug("fetch dispatched",
		zap.Uint64("token", uint64(req.Token)),
		zap.Stringer("kind", req.Kind),
		zap.String("name", req.Name))
	return req
}

// Run performs req against the fetcher. It does not touch the state and
// may be called from any goroutine.
func (o *Orchestrator) Run(ctx context.Context, req Request) Result {
	res := Result{Token: req.Token, Kind: req.Kind}
	switch req.Kind {
	case KindBatch:
		recs, err := o.fetcher.FetchBatch(ctx, pokeapi.DefaultIDs())
		if err != nil {
			res.Err = ensureKind(err, pokeapi.ErrBatchFetch)
			return res
		}
		res.Records = recs
	case KindByName:
		rec, err := o.fetcher.FetchByName(ctx, req.Name)
		if err != nil {
			res.Err = ensureKind(err, pokeapi.ErrNotFound)
			return res
		}
		res.Records = []pokeapi.Record{rec}
	default:
		res.Err = fmt.Errorf("unknown request kind %d", req.Kind)
	}
	return res
}

// Apply reconciles a finished request into the state. Results whose token
// is not the latest, or that arrive after Close, are dropped. Reports
// whether the state changed.
func (o *Orchestrator) Apply(res Result) bool {
	if o.closed {
		o.logger.Debug("fetch result dropped after close", zap.Uint64("token", uint64(res.Token)))
		return false
	}
	if res.Token != o.latest {
		o.logger.Debug("stale fetch result dropped",
			zap.Uint64("token", uint64(res.Token)),
			zap.Uint64("latest", uint64(o.latest)))
		return false
	}
	if res.Err != nil {
		o.logger.Warn("fetch failed",
			zap.Uint64("token", uint64(res.Token)),
			zap.Stringer("kind", res.Kind),
			zap.Error(res.Err))
		o.state.ApplyError(messageFor(res.Kind))
		return true
	}
	o.logger.Info("fetch completed",
		zap.Uint64("token", uint64(res.Token)),
		zap.Stringer("kind", res.Kind),
		zap.Int("records", len(res.Records)))
	o.state.ApplyResults(res.Records)
	return true
}

// Do runs req and applies its result synchronously.
func (o *Orchestrator) Do(ctx context.Context, req Request) (Result, bool) {
	res := o.Run(ctx, req)
	return res, o.Apply(res)
}

// Close detaches the orchestrator from its state. In-flight requests may
// still finish; their results are discarded.
func (o *Orchestrator) Close() {
	o.closed = true
}

func messageFor(k Kind) string {
	if k == KindBatch {
		return pokeapi.MessageBatchFailed
	}
	return pokeapi.MessageNotFound
}

func ensureKind(err, kind error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
