package resolver

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stekfinance/internal/indexer"
	"stekfinance/internal/metrics"
	"stekfinance/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Fetcher . Fetcher
type Fetcher interface {
	InternalTransfers(ctx context.Context, hash string) ([]indexer.InternalTransfer, error)
}

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	GetInternalTransfer(ctx context.Context, hash string) (repository.InternalTransfer, error)
	SaveInternalTransfer(ctx context.Context, transfer repository.InternalTransfer) error
}

// Record is the value actually moved by a transaction's first internal transfer.
type Record struct {
	TransactionHash string
	Value           string
}

var errUnsettled = errors.New("lookup ended before reaching the fetcher")

type entry struct {
	record Record
	found  bool
}

// Resolver memoizes internal transfer lookups per transaction hash. A hash
// reaches the network at most once unless it is evicted by the size bound.
type Resolver struct {
	logs       *zap.SugaredLogger
	fetcher    Fetcher
	store      Store
	maxEntries int
	metrics    metrics.Resolver

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]entry
	order   []string
}

// New builds a resolver. store may be nil. maxEntries <= 0 disables eviction.
func New(logger *zap.SugaredLogger, fetcher Fetcher, store Store, maxEntries int) *Resolver {
	return &Resolver{
		logs:       logger,
		fetcher:    fetcher,
		store:      store,
		maxEntries: maxEntries,
		entries:    make(map[string]entry),
	}
}

// Resolve returns the first internal transfer of hash, or false when the
// upstream has none or could not be reached.
func (r *Resolver) Resolve(ctx context.Context, hash string) (Record, bool) {
	key := strings.ToLower(hash)
	if key == "" {
		return Record{}, false
	}

	if e, ok := r.cached(key); ok {
		r.metrics.ObserveLookup(metrics.LookupMemory)
		return e.record, e.found
	}

	for {
		v, err, _ := r.group.Do(key, func() (any, error) {
			if e, ok := r.cached(key); ok {
				return e, nil
			}
			e, settled := r.load(ctx, key)
			if !settled {
				return e, errUnsettled
			}
			r.remember(key, e)
			return e, nil
		})

		// a shared call led by a caller that gave up says nothing about this one
		if errors.Is(err, errUnsettled) && ctx.Err() == nil {
			continue
		}

		e := v.(entry)
		return e.record, e.found
	}
}

func (r *Resolver) cached(key string) (entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	return e, ok
}

func (r *Resolver) remember(key string, e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; ok {
		return
	}
	if r.maxEntries > 0 && len(r.order) >= r.maxEntries {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.entries, oldest)
	}
	r.entries[key] = e
	r.order = append(r.order, key)
}

// load reports whether it reached a verdict: a stored transfer or an answer
// from the fetcher, whatever that answer was. A context that ends before the
// fetcher is called leaves the hash unsettled.
func (r *Resolver) load(ctx context.Context, key string) (entry, bool) {
	if r.store != nil {
		stored, err := r.store.GetInternalTransfer(ctx, key)
		switch {
		case err == nil:
			r.metrics.ObserveLookup(metrics.LookupStore)
			return entry{record: Record{TransactionHash: key, Value: stored.Value}, found: true}, true
		case !errors.Is(err, repository.ErrTransferNotFound):
			r.logs.Warnw("reading stored internal transfer failed",
				"hash", key,
				"error", err)
		}
	}

	if ctx.Err() != nil {
		return entry{}, false
	}

	transfers, err := r.fetcher.InternalTransfers(ctx, key)
	if err != nil {
		r.logs.Warnw("resolving internal transfer failed",
			"hash", key,
			"error", err)
		r.metrics.ObserveLookup(metrics.LookupAbsent)
		return entry{}, true
	}
	if len(transfers) == 0 {
		r.metrics.ObserveLookup(metrics.LookupAbsent)
		return entry{}, true
	}

	first := transfers[0]
	r.metrics.ObserveLookup(metrics.LookupNetwork)

	if r.store != nil {
		err = r.store.SaveInternalTransfer(ctx, repository.InternalTransfer{
			TransactionHash: key,
			Value:           first.Value,
			From:            first.From,
			To:              first.To,
		})
		if err != nil {
			r.logs.Warnw("persisting internal transfer failed",
				"hash", key,
				"error", err)
		}
	}

	return entry{record: Record{TransactionHash: key, Value: first.Value}, found: true}, true
}
