package client

import (
	"context"
	"sync"
)

// Lister is the one capability Collection needs from the data layer.
type Lister interface {
	List(ctx context.Context) ([]Todo, error)
}

// Collection caches the todo list with an invalidate-and-refetch policy:
// mutations never patch the cached slice, they mark it stale and the next
// Get round-trips to the server. Stale reads therefore never outlive one
// mutation.
type Collection struct {
	mu     sync.Mutex
	lister Lister
	todos  []Todo
	valid  bool
}

func NewCollection(lister Lister) *Collection {
	return &Collection{lister: lister}
}

// Get returns the cached list, refetching first when a mutation has
// invalidated it. A failed refetch leaves the collection stale so the next
// Get tries again.
func (c *Collection) Get(ctx context.Context) ([]Todo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid {
		todos, err := c.lister.List(ctx)
		if err != nil {
			return nil, err
		}

		c.todos = todos
		c.valid = true
	}

	out := make([]Todo, len(c.todos))
	copy(out, c.todos)

	return out, nil
}

// Invalidate marks the cached list stale. Callers invoke it after every
// successful mutation.
func (c *Collection) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}
