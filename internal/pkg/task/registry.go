package task

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrClosed is returned when work is started on a registry that was already cancelled
var ErrClosed = errors.New("task registry closed")

type entry struct {
	id     uint64
	cancel context.CancelFunc
}

// Registry tracks in-flight calls owned by one screen so they can be cancelled
// together when the screen goes away. Starting a call under a key that is still
// running cancels the older call.
type Registry struct {
	mu      sync.Mutex
	tasks   map[string]entry
	nextID  uint64
	closed  bool
	pending sync.WaitGroup
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]entry)}
}

// NewKey returns a fresh request token
func NewKey() string {
	return uuid.NewString()
}

// start registers a call at key. Background calls are counted in pending under
// the same lock that CancelAll takes, so Wait never misses one.
func (r *Registry) start(parent context.Context, key string, background bool) (context.Context, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, nil, ErrClosed
	}
	if prev, ok := r.tasks[key]; ok {
		prev.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	r.nextID++
	id := r.nextID
	r.tasks[key] = entry{id: id, cancel: cancel}
	if background {
		r.pending.Add(1)
	}

	done := func() {
		cancel()
		r.mu.Lock()
		if cur, ok := r.tasks[key]; ok && cur.id == id {
			delete(r.tasks, key)
		}
		r.mu.Unlock()
	}
	return ctx, done, nil
}

// Run executes fn synchronously under a cancellable context registered at key.
// An empty key gets a fresh request token.
func (r *Registry) Run(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if key == "" {
		key = NewKey()
	}
	taskCtx, done, err := r.start(ctx, key, false)
	if err != nil {
		return err
	}
	defer done()
	return fn(taskCtx)
}

// Go is the asynchronous form of Run. It returns the key the call was registered under.
func (r *Registry) Go(ctx context.Context, key string, fn func(ctx context.Context)) (string, error) {
	if key == "" {
		key = NewKey()
	}
	taskCtx, done, err := r.start(ctx, key, true)
	if err != nil {
		return "", err
	}

	go func() {
		defer r.pending.Done()
		defer done()
		fn(taskCtx)
	}()
	return key, nil
}

// Active returns the number of calls in flight
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// CancelAll cancels every in-flight call and refuses new ones
func (r *Registry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for key, e := range r.tasks {
		e.cancel()
		delete(r.tasks, key)
	}
}

// Wait blocks until every call started with Go has returned
func (r *Registry) Wait() {
	r.pending.Wait()
}
