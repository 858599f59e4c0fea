package apiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/ringoctl/internal/testutil/fakeapi"
)

func TestResetPassword(t *testing.T) {
	fake := fakeapi.New(t, "users")
	fake.Seed("users", "42", map[string]any{"name": "ann"})
	client := New(fake.URL)

	t.Run("without password sends null", func(t *testing.T) {
		resp, err := client.ResetPassword(context.Background(), "42", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"password":"generated-secret"}`, string(resp.Body))

		reqs := fake.Requests()
		req := reqs[len(reqs)-1]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/users/42/password", req.Path)
		assert.JSONEq(t, `{"password": null}`, string(req.Body))
	})

	t.Run("with password", func(t *testing.T) {
		pw := "s3cret"
		_, err := client.ResetPassword(context.Background(), "42", &pw)
		require.NoError(t, err)

		reqs := fake.Requests()
		assert.JSONEq(t, `{"password":"s3cret"}`, string(reqs[len(reqs)-1].Body))
	})

	t.Run("unknown user", func(t *testing.T) {
		resp, err := client.ResetPassword(context.Background(), "99", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
