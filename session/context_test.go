package session

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meharahmadft6/educonnect/api"
)

func TestUserContextWithoutIdentityShortCircuits(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
	}))
	t.Cleanup(server.Close)

	store, err := Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	client := api.NewClient(server.URL, 5*time.Second, store)

	userCtx := NewUserContext(client, store)
	assert.True(t, userCtx.Loading())

	userCtx.Load()

	assert.False(t, userCtx.Loading())
	assert.Nil(t, userCtx.Profile())
	assert.Equal(t, 0, fetches)
}

func TestUserContextKeepsSessionOnNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // unreachable from here on

	store, err := Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, store.SetCredentials("tok", "student", "stu-1"))
	client := api.NewClient(server.URL, time.Second, store)

	userCtx := NewUserContext(client, store)
	userCtx.Load()

	assert.Nil(t, userCtx.Profile())
	require.Error(t, userCtx.Err())
	assert.False(t, api.IsAuth(userCtx.Err()))

	// an unreachable platform must not cost the user their session
	assert.Equal(t, "tok", store.Token())
	assert.Equal(t, "stu-1", store.UserID())
}

func TestUserContextReportsAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid or expired token"}`))
	}))
	t.Cleanup(server.Close)

	store, err := Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, store.SetCredentials("stale", "student", "stu-1"))
	client := api.NewClient(server.URL, 5*time.Second, store)

	userCtx := NewUserContext(client, store)
	userCtx.Load()

	assert.Nil(t, userCtx.Profile())
	assert.True(t, api.IsAuth(userCtx.Err()))
}

func TestUserContextLoadsProfileOnce(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"stu-1","firstName":"Jane","lastName":"Doe"}`))
	}))
	t.Cleanup(server.Close)

	store, err := Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, store.SetCredentials("tok", "student", "stu-1"))
	client := api.NewClient(server.URL, 5*time.Second, store)

	userCtx := NewUserContext(client, store)
	userCtx.Load()
	userCtx.Load() // second mount-style call must not refetch

	assert.Equal(t, 1, fetches)
	require.NotNil(t, userCtx.Profile())
	assert.Equal(t, "Jane Doe", userCtx.Profile().FullName())
}
