package cli

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyoffice/fyoffice/internal/client/tokenstore"
)

func TestLogin_SetsSessionAndPersistsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/Login/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"accessToken":{"token":"tok-1","expiration":"2030-01-01T00:00:00Z"}}`))
	})
	mux.HandleFunc("/api/Users/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":1,"firstName":"Ada","lastName":"Byron","email":"ada@fy.io","status":true}`))
	})

	a, out, tokens := newTestApp(t, mux, "")
	stubInput(t, []string{"ada@fy.io"}, "pass")

	require.NoError(t, a.Login(context.Background()))

	require.True(t, a.isLoggedIn())
	assert.Equal(t, "ada@fy.io", a.store.User().Email)
	assert.Contains(t, out.String(), "Welcome, Ada Byron!")

	stored, err := tokens.Get(context.Background(), tokenstore.AccessTokenName)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tok-1", stored.Value)
	assert.Equal(t, 2030, stored.ExpiresAt.Year())
}

func TestLogin_InvalidCredentialsShape(t *testing.T) {
	a, out, _ := newTestApp(t, http.NewServeMux(), "")
	stubInput(t, []string{"not-an-email"}, "pw")

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "email")
}

func TestLogin_BackendRejects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/Login/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"Detail":"Wrong email or password"}`))
	})

	a, out, _ := newTestApp(t, mux, "")
	stubInput(t, []string{"ada@fy.io"}, "wrong")

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Wrong email or password")
}

func TestLogout_ClearsSessionEvenWhenRevokeFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/RevokeToken/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"Detail":"boom"}`))
	})

	a, out, tokens := newTestApp(t, mux, "")
	a.store.SetUser(userFixture())
	require.NoError(t, tokens.Set(context.Background(), tokenstore.Token{
		Name: tokenstore.AccessTokenName, Value: "tok-1",
	}))
	stubInput(t, []string{"Logout"}, "")

	a.Logout(context.Background())

	assert.False(t, a.isLoggedIn())
	stored, err := tokens.Get(context.Background(), tokenstore.AccessTokenName)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Contains(t, out.String(), "Logged out.")
	assert.False(t, a.store.Confirmation().Visible)
}

func TestLogout_CancelKeepsSession(t *testing.T) {
	a, _, _ := newTestApp(t, http.NewServeMux(), "")
	a.store.SetUser(userFixture())
	stubInput(t, []string{"Cancel"}, "")

	a.Logout(context.Background())

	assert.True(t, a.isLoggedIn())
}
