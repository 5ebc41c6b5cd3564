package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func TestAuthMeReturnsNullForGuests(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env2 := decode(t, resp, nil)
	assert.True(t, env2.Success)
	assert.Equal(t, "null", string(env2.Data))
}

func TestRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t)

	var registered identityResponse
	resp := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &registered)
	require.NotEmpty(t, registered.Token)
	assert.Equal(t, "user", registered.User.Role)

	// Duplicate registration conflicts.
	resp = env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Wrong password is rejected without detail.
	resp = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var loggedIn identityResponse
	resp = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &loggedIn)
	require.NotEmpty(t, loggedIn.Token)

	resp = env.request(t, http.MethodGet, "/api/auth/me", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	env2 := decode(t, resp, &me)
	require.NotEqual(t, "null", string(env2.Data))
	assert.Equal(t, "alice@example.com", me.Email)
	assert.Equal(t, "user", me.Role)
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var payload struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)

	cookie := resp.Header.Get("Set-Cookie")
	require.NotEmpty(t, cookie)
	assert.True(t, strings.HasPrefix(cookie, env.cfg.CookieName+"="))
}
