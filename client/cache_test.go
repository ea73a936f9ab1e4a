package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"worktrack/client"
)

type fakeLister struct {
	calls int
	todos []client.Todo
	err   error
}

func (f *fakeLister) List(_ context.Context) ([]client.Todo, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.todos, nil
}

func TestCollection_Get(t *testing.T) {
	t.Run("fetches once and serves from cache", func(t *testing.T) {
		lister := &fakeLister{todos: []client.Todo{{ID: 1, Text: "walk the dog"}}}
		collection := client.NewCollection(lister)

		first, err := collection.Get(context.Background())
		assert.NoError(t, err)
		assert.Len(t, first, 1)

		second, err := collection.Get(context.Background())
		assert.NoError(t, err)
		assert.Len(t, second, 1)

		assert.Equal(t, 1, lister.calls)
	})

	t.Run("invalidate forces a refetch", func(t *testing.T) {
		lister := &fakeLister{todos: []client.Todo{{ID: 1, Text: "walk the dog"}}}
		collection := client.NewCollection(lister)

		_, err := collection.Get(context.Background())
		assert.NoError(t, err)

		lister.todos = append(lister.todos, client.Todo{ID: 2, Text: "feed the cat"})
		collection.Invalidate()

		refreshed, err := collection.Get(context.Background())
		assert.NoError(t, err)
		assert.Len(t, refreshed, 2)
		assert.Equal(t, 2, lister.calls)
	})

	t.Run("failed refetch stays stale and retries next time", func(t *testing.T) {
		lister := &fakeLister{err: errors.New("server down")}
		collection := client.NewCollection(lister)

		_, err := collection.Get(context.Background())
		assert.Error(t, err)

		lister.err = nil
		lister.todos = []client.Todo{{ID: 1}}

		recovered, err := collection.Get(context.Background())
		assert.NoError(t, err)
		assert.Len(t, recovered, 1)
		assert.Equal(t, 2, lister.calls)
	})

	t.Run("callers get a copy, not the cached slice", func(t *testing.T) {
		lister := &fakeLister{todos: []client.Todo{{ID: 1, Text: "walk the dog"}}}
		collection := client.NewCollection(lister)

		first, err := collection.Get(context.Background())
		assert.NoError(t, err)

		first[0].Text = "scribbled over"

		second, err := collection.Get(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "walk the dog", second[0].Text)
	})
}
