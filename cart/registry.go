package cart

import "sync"

// Registry maps session ids to carts. The map itself is guarded
// against concurrent HTTP requests; each cart still belongs to exactly
// one session, last write wins.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Get returns the session's cart, creating it on first use.
func (r *Registry) Get(sessionID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.carts[sessionID]; ok {
		return c
	}
	c := New()
	r.carts[sessionID] = c
	return c
}

// Drop discards a session's cart.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
