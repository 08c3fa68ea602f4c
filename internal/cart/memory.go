package cart

import (
	"context"
	"sync"
)

// MemoryRepository keeps carts in process memory. Suitable for a single
// replica; multi-replica deployments use the redis repository instead.
type MemoryRepository struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{carts: make(map[string]*Cart)}
}

func (r *MemoryRepository) Load(ctx context.Context, sessionID string) (*Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		return &Cart{}, nil
	}
	return c.clone(), nil
}

func (r *MemoryRepository) Save(ctx context.Context, sessionID string, c *Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = c.clone()
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
