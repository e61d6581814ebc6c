package feed

import (
	"sync"

	"github.com/B4-art/chatapp/contract"
	"github.com/B4-art/chatapp/domain"
)

// registry tracks the standing subscriptions per collection path.
// Subscriptions are identified by a monotonically increasing handle so
// unsubscribing one listener never disturbs the others on the path.
type registry struct {
	mu     sync.RWMutex
	nextID int
	byPath map[string]map[int]func([]domain.Message)
}

func newRegistry() *registry {
	return &registry{byPath: make(map[string]map[int]func([]domain.Message))}
}

// Subscribe registers fn for the path and returns its release handle.
// Empty listener sets are removed eagerly so paths do not accumulate
// over the provider's lifetime.
func (r *registry) Subscribe(path string, fn func([]domain.Message)) contract.Unsubscribe {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	if _, ok := r.byPath[path]; !ok {
		r.byPath[path] = make(map[int]func([]domain.Message))
	}
	r.byPath[path][id] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			if listeners, ok := r.byPath[path]; ok {
				delete(listeners, id)
				if len(listeners) == 0 {
					delete(r.byPath, path)
				}
			}
			r.mu.Unlock()
		})
	}
}

// Listeners returns the current subscriber set for a path.
func (r *registry) Listeners(path string) []func([]domain.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	listeners, ok := r.byPath[path]
	if !ok {
		return nil
	}
	out := make([]func([]domain.Message), 0, len(listeners))
	for _, fn := range listeners {
		out = append(out, fn)
	}
	return out
}
