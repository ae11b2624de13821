package discord

import "sync"

// Registry holds in-progress state keyed by string; one holder per key
type Registry[T any] struct {
	mu    sync.Mutex
	items map[string]T
}

// NewRegistry creates an empty registry
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// TryAcquire stores v under key unless the key is already held
func (r *Registry[T]) TryAcquire(key string, v T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; ok {
		return false
	}
	r.items[key] = v
	return true
}

// Release drops key and returns what it held
func (r *Registry[T]) Release(key string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.items[key]
	delete(r.items, key)
	return v, ok
}

// Get returns what key holds
func (r *Registry[T]) Get(key string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.items[key]
	return v, ok
}

// Len returns the number of held keys
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.items)
}
