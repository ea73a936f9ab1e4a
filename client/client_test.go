package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"worktrack/client"
)

func TestClient_List(t *testing.T) {
	t.Run("decodes the data envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":[{"id":1,"text":"walk the dog","done":false,"date":"2026-08-27","endDate":"2026-08-28"}]}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		todos, err := api.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, todos, 1)
		assert.Equal(t, int64(1), todos[0].ID)
		assert.Equal(t, "walk the dog", todos[0].Text)
	})

	t.Run("non-2xx wraps the list error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"database error"}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		_, err := api.List(context.Background())

		assert.ErrorIs(t, err, client.ErrListFailed)
		assert.Contains(t, err.Error(), "database error")
	})

	t.Run("malformed body wraps the list error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		_, err := api.List(context.Background())

		assert.ErrorIs(t, err, client.ErrListFailed)
	})

	t.Run("unreachable server wraps the list error", func(t *testing.T) {
		api := client.NewWithBaseURL("http://127.0.0.1:1")

		_, err := api.List(context.Background())

		assert.ErrorIs(t, err, client.ErrListFailed)
	})
}

func TestClient_Add(t *testing.T) {
	t.Run("posts the form and decodes the todo envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var form client.TodoForm
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&form))
			assert.Equal(t, "walk the dog", form.Text)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"todo":{"id":7,"text":"walk the dog","done":false,"date":"2026-08-27","endDate":"2026-08-28"}}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		todo, err := api.Add(context.Background(), client.TodoForm{
			Text:    "walk the dog",
			Date:    "2026-08-27",
			EndDate: "2026-08-28",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), todo.ID)
	})

	t.Run("validation rejection wraps the add error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"text is a required field"}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		_, err := api.Add(context.Background(), client.TodoForm{})

		assert.ErrorIs(t, err, client.ErrAddFailed)
		assert.Contains(t, err.Error(), "required")
	})
}

func TestClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/7", r.URL.Path)

		w.Write([]byte(`{"success":true,"data":{"id":7,"text":"renamed","done":true,"date":"2026-08-27","endDate":"2026-08-28"}}`))
	}))
	defer server.Close()

	api := client.NewWithBaseURL(server.URL)

	todo, err := api.Update(context.Background(), 7, client.Todo{
		ID:      7,
		Text:    "renamed",
		Done:    true,
		Date:    "2026-08-27",
		EndDate: "2026-08-28",
	})

	assert.NoError(t, err)
	assert.Equal(t, "renamed", todo.Text)
	assert.True(t, todo.Done)
}

func TestClient_Patch(t *testing.T) {
	t.Run("sends only the named fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/7", r.URL.Path)

			var raw map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			assert.Len(t, raw, 1)
			assert.Equal(t, true, raw["done"])

			w.Write([]byte(`{"success":true,"data":{"id":7,"text":"walk the dog","done":true,"date":"2026-08-27","endDate":"2026-08-28"}}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		done := true

		todo, err := api.Patch(context.Background(), 7, client.TodoPatch{Done: &done})

		assert.NoError(t, err)
		assert.True(t, todo.Done)
	})

	t.Run("missing record wraps the patch error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"todo not found"}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		done := true

		_, err := api.Patch(context.Background(), 999, client.TodoPatch{Done: &done})

		assert.ErrorIs(t, err, client.ErrPatchFailed)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestClient_Delete(t *testing.T) {
	t.Run("acknowledged deletion returns nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/7", r.URL.Path)

			w.Write([]byte(`{"success":true,"message":"Todo deleted"}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		assert.NoError(t, api.Delete(context.Background(), 7))
	})

	t.Run("missing record wraps the delete error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"todo not found"}`))
		}))
		defer server.Close()

		api := client.NewWithBaseURL(server.URL)

		err := api.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, client.ErrDeleteFailed)
	})
}

func TestTodoPatch_IsEmpty(t *testing.T) {
	assert.True(t, client.TodoPatch{}.IsEmpty())

	done := true
	assert.False(t, client.TodoPatch{Done: &done}.IsEmpty())
}
