package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/ringoctl/internal/testutil/fakeapi"
)

func TestCreateItem(t *testing.T) {
	fake := fakeapi.New(t, "users")
	client := New(fake.URL)

	resp, err := client.CreateItem(context.Background(), "users", json.RawMessage(`{"name":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/users", reqs[0].Path)
	assert.Equal(t, `{"name":"a"}`, string(reqs[0].Body))
}

func TestReadItem(t *testing.T) {
	fake := fakeapi.New(t, "users")
	fake.Seed("users", "3", map[string]any{"name": "ann"})
	client := New(fake.URL)

	resp, err := client.ReadItem(context.Background(), "users", 3)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"3","name":"ann"}`, string(resp.Body))

	resp, err = client.ReadItem(context.Background(), "users", 4)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, resp.APIError())
	assert.True(t, resp.APIError().IsNotFound())
}

func TestUpdateItem(t *testing.T) {
	fake := fakeapi.New(t, "users")
	client := New(fake.URL)

	resp, err := client.UpdateItem(context.Background(), "users", "7", json.RawMessage(`{"id":7,"name":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/users/7", reqs[0].Path)
	assert.Equal(t, `{"id":7,"name":"x"}`, string(reqs[0].Body))
}

func TestDeleteItem(t *testing.T) {
	fake := fakeapi.New(t, "users")
	fake.Seed("users", "5", map[string]any{})
	client := New(fake.URL)

	resp, err := client.DeleteItem(context.Background(), "users", 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Empty(t, reqs[0].Body)
}

func TestSearchItems(t *testing.T) {
	fake := fakeapi.New(t, "users")
	client := New(fake.URL)

	t.Run("defaults omit search", func(t *testing.T) {
		_, err := client.SearchItems(context.Background(), "users", DefaultSearchParams())
		require.NoError(t, err)

		reqs := fake.Requests()
		req := reqs[len(reqs)-1]
		assert.Equal(t, "/users", req.Path)
		assert.Equal(t, "100", req.Query.Get("limit"))
		assert.Equal(t, "0", req.Query.Get("offset"))
		assert.False(t, req.Query.Has("search"))
	})

	t.Run("explicit values", func(t *testing.T) {
		filter := "ann smith"
		_, err := client.SearchItems(context.Background(), "users", SearchParams{Limit: 5, Offset: 10, Search: &filter})
		require.NoError(t, err)

		reqs := fake.Requests()
		req := reqs[len(reqs)-1]
		assert.Equal(t, "5", req.Query.Get("limit"))
		assert.Equal(t, "10", req.Query.Get("offset"))
		assert.Equal(t, "ann smith", req.Query.Get("search"))
	})

	t.Run("empty filter is sent", func(t *testing.T) {
		empty := ""
		q := SearchParams{Limit: 1, Search: &empty}.Query()
		assert.True(t, q.Has("search"))
	})
}

func TestSearchItems_Filters(t *testing.T) {
	fake := fakeapi.New(t, "users")
	fake.Seed("users", "1", map[string]any{"name": "ann"})
	fake.Seed("users", "2", map[string]any{"name": "bob"})
	client := New(fake.URL)

	filter := "bob"
	resp, err := client.SearchItems(context.Background(), "users", SearchParams{Limit: 100, Search: &filter})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2","name":"bob"}]`, string(resp.Body))
}
