// Package query loads the data behind each dashboard view.
//
// A Query owns one view's state. Refetch replaces Data only when every
// request behind it succeeded; on failure the previous Data stays and Error
// carries a displayable message.
package query

import (
	"context"
	"errors"
	"sync"

	"github.com/josh-kwaku/invoice-dashboard/internal/apiclient"
	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

type State[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`

	// Err is the cause behind Error, for callers that branch on it.
	Err error `json:"-"`
}

type Fetcher[T any] func(ctx context.Context) (T, error)

type Query[T any] struct {
	fetch    Fetcher[T]
	fallback string

	mu      sync.Mutex
	state   State[T]
	gen     uint64
	closed  bool
	subs    map[int]chan State[T]
	nextSub int
}

// New returns an idle query. fallback is the message used when a failure
// yields nothing better.
func New[T any](fetch Fetcher[T], fallback string) *Query[T] {
	return &Query[T]{
		fetch:    fetch,
		fallback: fallback,
		subs:     make(map[int]chan State[T]),
	}
}

// Refetch runs the fetcher and publishes its outcome. A refetch started
// later supersedes this one; a superseded or closed query publishes nothing.
func (q *Query[T]) Refetch(ctx context.Context) State[T] {
	q.mu.Lock()
	if q.closed {
		defer q.mu.Unlock()
		return q.state
	}
	q.gen++
	gen := q.gen
	q.state.Loading = true
	q.state.Error = ""
	q.state.Err = nil
	q.publishLocked()
	q.mu.Unlock()

	data, err := q.fetch(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || gen != q.gen {
		return q.state
	}
	if err != nil {
		q.state.Error = message(err, q.fallback)
		q.state.Err = err
	} else {
		q.state.Data = data
	}
	q.state.Loading = false
	q.publishLocked()
	return q.state
}

func (q *Query[T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Subscribe returns a channel holding the most recently published state.
// Slow readers see only the latest one.
func (q *Query[T]) Subscribe() (<-chan State[T], func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ch := make(chan State[T], 1)
	if q.closed {
		close(ch)
		return ch, func() {}
	}
	id := q.nextSub
	q.nextSub++
	q.subs[id] = ch

	return ch, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		if c, ok := q.subs[id]; ok {
			delete(q.subs, id)
			close(c)
		}
	}
}

// Close detaches the query. Results still in flight are discarded.
func (q *Query[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	for id, ch := range q.subs {
		delete(q.subs, id)
		close(ch)
	}
}

func (q *Query[T]) publishLocked() {
	for _, ch := range q.subs {
		select {
		case <-ch:
		default:
		}
		ch <- q.state
	}
}

func message(err error, fallback string) string {
	var missing *missingIDError
	if errors.As(err, &missing) {
		return missing.msg
	}
	return apiclient.ErrorMessage(err, fallback)
}

// missingIDError short-circuits a detail fetch without touching the network.
type missingIDError struct {
	msg string
}

func (e *missingIDError) Error() string { return e.msg }

func (e *missingIDError) Unwrap() error { return domain.ErrMissingID }
