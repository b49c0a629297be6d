package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginPostsCredentialsAndReturnsSession(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"token":"tok-9","user":{"id":"u1","name":"Amina","role":"farmer"}}`))
	})

	auth, err := NewAuthService(client).Login(context.Background(), LoginInput{
		Email:    "amina@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "/auth/login", gotPath)
	assert.Equal(t, map[string]any{
		"email":    "amina@example.com",
		"password": "secret1",
	}, gotBody)
	assert.Equal(t, "tok-9", auth.Token)
	assert.Equal(t, "u1", auth.User.ID)
}

func TestRegisterPostsAccountFields(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"token":"tok-1","user":{"id":"u5","name":"Joseph","role":"wholesaler"}}`))
	})

	auth, err := NewAuthService(client).Register(context.Background(), RegisterInput{
		Name:     "Joseph",
		Email:    "joseph@example.com",
		Password: "longenough",
		Role:     RoleWholesaler,
	})
	require.NoError(t, err)

	assert.Equal(t, "/auth/register", gotPath)
	assert.Equal(t, "wholesaler", gotBody["role"])
	assert.Equal(t, "u5", auth.User.ID)
}

func TestMeSendsStoredCredential(t *testing.T) {
	var gotPath, gotAuth string

	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"u1","name":"Amina","role":"farmer"}`))
	})
	require.NoError(t, store.Set("tok-9"))

	user, err := NewAuthService(client).Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/auth/me", gotPath)
	assert.Equal(t, "Bearer tok-9", gotAuth)
	assert.Equal(t, "Amina", user.Name)
}
