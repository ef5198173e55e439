// Package appctx provides the request-scoped unit of work used by the
// application services.
//
// A RequestContext memoizes loads and queues writes. Services read through
// GetOrFetch, stage the mutated entity with its save action, queue side
// effects such as audit entries, and Commit once:
//
//	rc := appctx.New(ctx)
//	proc, err := appctx.GetOrFetch(ctx, rc, "process:12", fetchProcess)
//	rc.Stage("process:12", proc, &saveProcess{process: proc})
//	rc.AddAction(&appendAudit{entry: entry})
//	err = rc.Commit(ctx)
//
// If a queued action fails, the actions before it are rolled back. One
// RequestContext belongs to one request and is never shared between
// requests.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

var (
	// ErrAlreadyCommitted is returned when work is queued on, or Commit is
	// called again on, a committed RequestContext.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil action is queued.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when a key was cached with
	// a different type than the one requested.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext embeds the request's context.Context and adds a
// memoization cache and a commit queue. The cache is used from the request
// goroutine only; the queue is guarded by queueMu.
type RequestContext struct {
	context.Context

	cache map[string]cached

	queueMu   sync.Mutex
	items     []unit
	committed bool
}

type cached struct {
	value any
	err   error
}

type requestContextKey struct{}

// New returns an empty RequestContext over ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cached),
	}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored by WithRequestContext, or
// nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the value cached under key, calling fetch with ctx on
// a miss. ctx is the caller's context, so a load carries the request
// deadline and the current span even when rc was created further out.
// Errors are cached too, so a failed load is not retried within the
// request. A key must always be read with the same T.
func GetOrFetch[T any](ctx context.Context, rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if c, ok := rc.cache[key]; ok {
		if c.err != nil {
			return zero, c.err
		}
		v, ok := c.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, c.value, zero)
		}
		return v, nil
	}

	v, err := fetch(ctx)
	rc.cache[key] = cached{value: v, err: err}
	return v, err
}

// DataProvider binds a cache key to its fetch function.
type DataProvider[T any] struct {
	key   string
	fetch func(ctx context.Context) (T, error)
}

// NewDataProvider returns a DataProvider for key.
func NewDataProvider[T any](key string, fetch func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetch: fetch}
}

// Get is GetOrFetch with the provider's key and fetch function.
func (p *DataProvider[T]) Get(ctx context.Context, rc *RequestContext) (T, error) {
	return GetOrFetch(ctx, rc, p.key, p.fetch)
}

// Stage caches entity under key, so later reads see the pending write, and
// queues action for Commit.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	if err := rc.enqueue(single{action: action}); err != nil {
		return err
	}
	rc.cache[key] = cached{value: entity}
	return nil
}

// Committed reports whether Commit has been called.
func (rc *RequestContext) Committed() bool {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return rc.committed
}

// Pending returns the number of queued units not yet committed.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return 0
	}
	return len(rc.items)
}
